package kat

// Role tags what a chain carries for the framer: a generic buffer, a
// literal payload, a name token, or a query. Roles add no storage;
// role-specific behavior lives on the wrapper types.
type Role uint8

const (
	RoleChain Role = iota
	RoleValue
	RoleAlias
	RoleQuery
)

// Value is a chain used as a literal payload token.
type Value struct {
	Chain
}

// NewValue returns an empty payload token.
func NewValue() *Value {
	v := &Value{}
	v.role = RoleValue
	return v
}

// ValueOf returns a payload token holding the UTF-8 bytes of s.
func ValueOf(s string) *Value {
	v := NewValue()
	v.AppendString(s)
	return v
}

// Alias is a chain used as a name token. On the wire a name carries
// a trailing ':' terminator.
type Alias struct {
	Chain
}

// NewAlias returns an empty name token.
func NewAlias() *Alias {
	a := &Alias{}
	a.role = RoleAlias
	return a
}

// AliasOf returns a name token holding the UTF-8 bytes of s.
func AliasOf(s string) *Alias {
	a := NewAlias()
	a.AppendString(s)
	return a
}

// Seal strips the trailing name terminator, if present.
func (a *Alias) Seal() {
	a.mustOpen()
	if a.count > 0 && a.value[a.count-1] == ':' {
		a.count--
		a.touch()
	}
}
