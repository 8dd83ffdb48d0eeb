package a2ui

// Envelope keys recognized by ParseMessage. A well-formed message carries
// exactly one of these at the top level.
const (
	KeySurfaceUpdate   = "surfaceUpdate"
	KeyDataModelUpdate = "dataModelUpdate"
	KeyBeginRendering  = "beginRendering"
	KeySurfaceDeletion = "deleteSurface"
)

// SurfaceUpdate delivers components to merge into a surface's tree.
type SurfaceUpdate struct {
	SurfaceID  string
	Components []Component
}

// DataModelUpdate writes a value into a surface's data model. An empty
// Path addresses the model root.
type DataModelUpdate struct {
	SurfaceID string
	Path      string
	Contents  Value
}

// BeginRendering marks a surface ready to render by naming its root
// component, and optionally carries styles and a catalog id.
type BeginRendering struct {
	SurfaceID string
	Root      string
	Styles    map[string]Value
	CatalogID string
}

// SurfaceDeletion removes a surface and its data model.
type SurfaceDeletion struct {
	SurfaceID string
}

// Message is the closed union of the four protocol message kinds. Exactly
// one field is non-nil on a parsed message.
type Message struct {
	SurfaceUpdate   *SurfaceUpdate
	DataModelUpdate *DataModelUpdate
	BeginRendering  *BeginRendering
	SurfaceDeletion *SurfaceDeletion
}

// SurfaceID returns the surface id the message addresses, or "" for a
// zero Message.
func (m Message) SurfaceID() string {
	switch {
	case m.SurfaceUpdate != nil:
		return m.SurfaceUpdate.SurfaceID
	case m.DataModelUpdate != nil:
		return m.DataModelUpdate.SurfaceID
	case m.BeginRendering != nil:
		return m.BeginRendering.SurfaceID
	case m.SurfaceDeletion != nil:
		return m.SurfaceDeletion.SurfaceID
	default:
		return ""
	}
}
