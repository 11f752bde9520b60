package nodefactory

// Capabilities describes which historical API shape a library instance
// exposes. It is computed once by Probe and never changes.
type Capabilities struct {
	// HasFactory is set when the operations live on the object returned by
	// the instance's Factory method.
	HasFactory bool

	DecoratorsFirst              bool
	MissingPrivateIdentifier     bool
	MissingStaticBlock           bool
	StaticBlockTakesModifiers    bool
	MissingAssertClause          bool
	MissingSatisfies             bool
	SpecifiersLackTypeOnly       bool
	ImportEqualsLacksTypeOnly    bool
	ImportDeclLacksAssert        bool
	ExportDeclTypeOnlyLast       bool
	ExportDeclLacksAssert        bool
	ImportTypeLacksAssertions    bool
	TypeParamLacksModifiers      bool
	VariableDeclLacksExclamation bool
	// ExpressionWithTypeArgsSwapped is set when type arguments come before
	// the expression.
	ExpressionWithTypeArgsSwapped bool
	ImportClauseTypeOnlyLast      bool
	// UpdateOmitsOriginal is set when update operations do not link the
	// new node to the one it replaces.
	UpdateOmitsOriginal bool
}

// Canonical reports whether the library needs no adaptation at all.
func (c Capabilities) Canonical() bool {
	c.HasFactory = false
	return c == Capabilities{}
}

// Flag is a named capability value.
type Flag struct {
	Name  string
	Value bool
}

// Flags returns every capability in probe order.
func (c Capabilities) Flags() []Flag {
	flags := []Flag{{"HasFactory", c.HasFactory}}
	for _, p := range probes {
		flags = append(flags, Flag{p.name, *p.flag(&c)})
	}
	return flags
}

// Deviations returns the names of the capabilities that are set, except
// HasFactory.
func (c Capabilities) Deviations() []string {
	var out []string
	for _, f := range c.Flags()[1:] {
		if f.Value {
			out = append(out, f.Name)
		}
	}
	return out
}
