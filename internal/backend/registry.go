package backend

import "log/slog"

// DefaultEngine is used when an engine name is not recognized.
const DefaultEngine = "bing"

// constructors maps engine names to backend factories. Adding an engine
// means adding an entry here; callers select engines purely by name.
var constructors = map[string]func(TransportConfig) Backend{
	"duckduckgo": func(cfg TransportConfig) Backend { return NewDuckDuckGo(cfg) },
	"bing":       func(cfg TransportConfig) Backend { return NewBing(cfg) },
}

// New creates a backend by engine name. Unknown names degrade to the
// default engine with a warning rather than failing, so a stale config
// value cannot take the whole pipeline down.
func New(name string, cfg TransportConfig) Backend {
	if ctor, ok := constructors[name]; ok {
		return ctor(cfg)
	}
	slog.Warn("unknown search engine, using default",
		slog.String("engine", name),
		slog.String("default", DefaultEngine))
	return constructors[DefaultEngine](cfg)
}

// Engines returns the registered engine names.
func Engines() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	return names
}
