package service

// QRCodeService generates share codes for stores
type QRCodeService interface {
	// GenerateStoreQR returns a PNG QR code that opens the store on the public map
	GenerateStoreQR(storeID int64) ([]byte, error)

	// StoreURL returns the link encoded in the store QR code
	StoreURL(storeID int64) string
}
