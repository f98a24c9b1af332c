package config

// File represents the structure of the .kmak.yaml settings file.
type File struct {
	// Shell is a pointer so that an omitted key can be told apart from "shell: []".
	Shell  *[]string         `yaml:"shell"`
	Env    map[string]string `yaml:"env"`
	Limits LimitsDTO         `yaml:"limits"`
	Log    LogDTO            `yaml:"log"`
}

// LimitsDTO represents the limits section of the settings file.
type LimitsDTO struct {
	Variables int `yaml:"variables"`
	Tasks     int `yaml:"tasks"`
	Lines     int `yaml:"lines"`
}

// LogDTO represents the log section of the settings file.
type LogDTO struct {
	Format string `yaml:"format"`
	Level  string `yaml:"level"`
}
