package rdf

import "fmt"

// Node is an RDF node: a Resource or a Literal.
type Node interface {
	IsResource() bool
	IsLiteral() bool
	// Text returns the literal text, "" for resources.
	Text() string
}

// Literal is a plain text node.
type Literal struct {
	text string
}

func (l *Literal) IsResource() bool { return false }
func (l *Literal) IsLiteral() bool  { return true }
func (l *Literal) Text() string     { return l.text }

// Resource is a node identified by a URI. Anonymous resources get a
// generated identifier. An rdf:Seq resource additionally carries its
// member list in document order.
type Resource struct {
	uri   string
	model *Model

	isSequence bool
	items      []Node
}

func (r *Resource) IsResource() bool { return true }
func (r *Resource) IsLiteral() bool  { return false }
func (r *Resource) Text() string     { return "" }

// URI returns the resource identifier.
func (r *Resource) URI() string {
	return r.uri
}

// IsSequence reports whether the resource is an rdf:Seq container.
func (r *Resource) IsSequence() bool {
	return r.isSequence
}

// SequenceItems returns the Seq members in document order.
func (r *Resource) SequenceItems() []Node {
	return r.items
}

func (r *Resource) appendToSequence(n Node) {
	r.items = append(r.items, n)
}

// Property returns the object of the first statement with this resource
// as subject and the given predicate, nil when absent.
func (r *Resource) Property(predicate string) Node {
	if r == nil || r.model == nil {
		return nil
	}
	for _, stmt := range r.model.bySubject[r.uri] {
		if stmt.Predicate == predicate {
			return stmt.Object
		}
	}
	return nil
}

// PropertyText returns the literal text of a property, "" when the
// property is absent or not a literal.
func (r *Resource) PropertyText(predicate string) string {
	obj := r.Property(predicate)
	if obj == nil {
		return ""
	}
	return obj.Text()
}

// HasProperty reports whether any statement with this subject carries the
// predicate.
func (r *Resource) HasProperty(predicate string) bool {
	return r.Property(predicate) != nil
}

// Statement is one (subject, predicate, object) triple. Predicates are
// plain property URIs.
type Statement struct {
	Subject   *Resource
	Predicate string
	Object    Node
}

// Model holds the statements read from one RDF document plus an index of
// its resources.
type Model struct {
	resources map[string]*Resource
	// statements in document order; bySubject indexes them for property
	// lookup
	statements []*Statement
	bySubject  map[string][]*Statement
	anonymous  int
}

func NewModel() *Model {
	return &Model{
		resources: make(map[string]*Resource),
		bySubject: make(map[string][]*Statement),
	}
}

// CreateResource returns the resource with the given URI, creating it if
// needed. An empty URI creates an anonymous resource with a generated
// identifier.
func (m *Model) CreateResource(uri string) *Resource {
	if uri == "" {
		m.anonymous++
		uri = fmt.Sprintf("#genid%d", m.anonymous)
	}
	if res, ok := m.resources[uri]; ok {
		return res
	}
	res := &Resource{uri: uri, model: m}
	m.resources[uri] = res
	return res
}

// CreateSequence returns the resource with the given URI marked as an
// rdf:Seq container.
func (m *Model) CreateSequence(uri string) *Resource {
	res := m.CreateResource(uri)
	res.isSequence = true
	return res
}

// CreateLiteral wraps text in a literal node.
func (m *Model) CreateLiteral(text string) *Literal {
	return &Literal{text: text}
}

// AddStatement records a triple.
func (m *Model) AddStatement(subject *Resource, predicate string, object Node) {
	stmt := &Statement{Subject: subject, Predicate: predicate, Object: object}
	m.statements = append(m.statements, stmt)
	m.bySubject[subject.uri] = append(m.bySubject[subject.uri], stmt)
}

// RemoveStatement deletes all triples matching subject, predicate and
// object identity.
func (m *Model) RemoveStatement(subject *Resource, predicate string, object Node) {
	matches := func(stmt *Statement) bool {
		return stmt.Subject == subject && stmt.Predicate == predicate && stmt.Object == object
	}
	kept := m.statements[:0]
	for _, stmt := range m.statements {
		if !matches(stmt) {
			kept = append(kept, stmt)
		}
	}
	m.statements = kept

	keptSubj := m.bySubject[subject.uri][:0]
	for _, stmt := range m.bySubject[subject.uri] {
		if !matches(stmt) {
			keptSubj = append(keptSubj, stmt)
		}
	}
	m.bySubject[subject.uri] = keptSubj
}

// Statements returns all triples in document order.
func (m *Model) Statements() []*Statement {
	return m.statements
}

// ResourcesWithType returns the subjects carrying an rdf:type statement
// with the given type URI, in document order.
func (m *Model) ResourcesWithType(typeURI string) []*Resource {
	var out []*Resource
	for _, stmt := range m.statements {
		if stmt.Predicate != rdfType {
			continue
		}
		if obj, ok := stmt.Object.(*Resource); ok && obj.uri == typeURI {
			out = append(out, stmt.Subject)
		}
	}
	return out
}
