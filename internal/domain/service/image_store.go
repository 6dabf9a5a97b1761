package service

// ImageStore persists uploaded image bytes and returns the relative URL path
// the image will be served from.
type ImageStore interface {
	Save(filename string, data []byte) (string, error)
}
