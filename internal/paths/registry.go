package paths

const (
	Office    = "office"
	Freelance = "freelance"
)

var registry = map[string]Projector{
	Office:    &OfficeProjector{},
	Freelance: &FreelanceProjector{},
}

func Get(name string) (Projector, bool) {
	p, ok := registry[name]
	return p, ok
}
