package service

// QRCodeService renders QR codes for contact links.
type QRCodeService interface {
	// GenerateContactQR encodes a URI (e.g. tel:+48123456789) as a PNG image.
	GenerateContactQR(uri string) ([]byte, error)
}
