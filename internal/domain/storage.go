package domain

// DocumentStore persists raw uploaded documents. Save returns an opaque
// locator used for the single compensating Delete on pipeline failure.
type DocumentStore interface {
	Save(data []byte, fileName string) (locator string, err error)
	Delete(locator string) error
}
