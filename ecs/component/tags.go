package component

// Kind is the variant tag every world object carries. Damage resolution only
// treats KindEntity objects that also hold Health as damageable.
type Kind uint8

const (
	KindEntity Kind = iota + 1
	KindStaticProp
	KindProjectile
)

func (k Kind) String() string {
	switch k {
	case KindEntity:
		return "entity"
	case KindStaticProp:
		return "static_prop"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

type Tag struct {
	Kind Kind
	Name string
}

var TagComponent = NewComponent[Tag]()

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()
