package request

// StallFormDocumentRequest opens the public stall form. The document may come
// masked; the use case keeps its digits.
type StallFormDocumentRequest struct {
	Document string `json:"document" binding:"required"`
}
