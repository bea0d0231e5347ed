// Package atom implements lazy node wrappers for Atom 0.3 and 1.0
// documents. Atom 0.3 sources are converted to the 1.0 shape before the
// wrappers see them, so the rest of the pipeline only deals with one
// vocabulary.
package atom

// Namespace URIs of the two Atom revisions.
const (
	// Atom1Namespace is the Atom 1.0 namespace (RFC 4287).
	Atom1Namespace = "http://www.w3.org/2005/Atom"
	// Atom0_3Namespace is the namespace of the obsolete Atom 0.3 draft.
	Atom0_3Namespace = "http://purl.org/atom/ns#"
)
