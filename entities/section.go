package entities

import "github.com/wholder/dxfreader/core"

// Section tracks a SECTION/ENDSEC pair. Group 2 names the section
// ("HEADER", "BLOCKS", "ENTITIES", ...); when the section is HEADER,
// group-9 names also open header-variable slots whose values are
// captured here, so a single type does double duty rather than
// splitting "header variable capture" into its own variant.
type Section struct {
	BaseEntity
	Name      string
	Variables map[string]string

	pendingVar string
}

func init() {
	Register("SECTION", func() Entity {
		return &Section{
			BaseEntity: BaseEntity{TypeName: "SECTION"},
			Variables:  map[string]string{},
		}
	})
}

func (s *Section) AddParm(tag core.Tag) error {
	switch tag.Code {
	case 2:
		s.Name = tag.AsString()
	case 9:
		s.pendingVar = tag.AsString()
	default:
		if s.Name == "HEADER" && s.pendingVar != "" {
			s.Variables[s.pendingVar] = tag.AsString()
			s.pendingVar = ""
		}
	}
	return nil
}
