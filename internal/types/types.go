package types

// SchemaRef identifies the catalog scope of one quick-start run.
type SchemaRef struct {
	ConnectionEndpoint string
	SchemaName         string
}

type TableDescriptor struct {
	Name string
}

type ColumnDescriptor struct {
	Name       string
	NativeType string
	Position   int // 0-based, catalog order
}

type ResolvedColumn struct {
	ColumnDescriptor
	MappedType   string
	IsPrimaryKey bool
}

// IdentifierSet is derived once per table and shared by every artifact of
// that table, so independently rendered files agree on names.
type IdentifierSet struct {
	EntityName  string // UserAccount
	FieldPrefix string // userAccount
	PathSegment string // userAccounts
}

type GeneratedFile struct {
	Dir     string `yaml:"dir"`
	Name    string `yaml:"name"`
	Content string `yaml:"-"`
}

// ArtifactKind is one of the five structural roles emitted per table.
type ArtifactKind int

const (
	Entity ArtifactKind = iota
	Repository
	ServiceInterface
	ServiceImpl
	Controller
)

// ArtifactKinds lists every kind in emission order.
var ArtifactKinds = []ArtifactKind{Entity, Repository, ServiceInterface, ServiceImpl, Controller}

func (k ArtifactKind) String() string {
	switch k {
	case Entity:
		return "entity"
	case Repository:
		return "repository"
	case ServiceInterface:
		return "service"
	case ServiceImpl:
		return "service implementation"
	case Controller:
		return "controller"
	default:
		return "unknown"
	}
}
