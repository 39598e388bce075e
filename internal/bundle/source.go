package bundle

// Source is the per-item input of the pipeline as resolved from storage.
type Source struct {
	// TemplateDir is the directory of static assets of the item template.
	TemplateDir string

	// Properties is the caller JSON object the document is built from.
	Properties []byte

	// Personalization is the optional personalization document. It is nil
	// when the bundle must not offer personalization.
	Personalization []byte
}
