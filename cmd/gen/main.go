// Command gen regenerates the typed query builders under
// internal/infra/persistence/postgres/query. Only plain-column tables are
// listed; availability rows and the viewport queries stay hand-written SQL.
package main

import (
	"locator/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	g.ApplyBasic(
		model.StoreModel{},
		model.FlavorModel{},
		model.UpdateLogModel{},
		model.ConnectionModel{},
	)

	g.Execute()
}
