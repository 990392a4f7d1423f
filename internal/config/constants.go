package config

const (
	// Configuration file paths
	ConfigPathHelpTopicsDir = "configs/help"
)
