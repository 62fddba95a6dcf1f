package tspgenetic

// ToolConfig is the TOML config shared by the cmd tools. Engine parameters
// come from flags; file locations, logging, and the optional run archive
// live here.
type ToolConfig struct {
	Cities      string             `toml:"cities"`
	LogLevel    string             `toml:"log_level"`
	Persistence *PersistenceConfig `toml:"persistence"`
}
