package interfaces

// IQRCodeRenderer turns a PIX copy-and-paste code into a PNG image.
type IQRCodeRenderer interface {
	PNG(content string) ([]byte, error)
}
