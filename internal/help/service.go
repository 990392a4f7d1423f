package help

// Service answers help queries for the chat and HTTP surfaces.
type Service struct {
	registry  *Registry
	formatter *Formatter
}

// NewService creates a help service over the given registry.
func NewService(registry *Registry) *Service {
	return &Service{
		registry:  registry,
		formatter: NewFormatter(),
	}
}

// Describe renders the named topic for the platform. An empty or unknown
// topic yields the generic listing of available topics instead.
func (s *Service) Describe(topicName, platform string) string {
	if topicName != "" {
		if topic, ok := s.registry.GetTopic(topicName); ok {
			return s.formatter.FormatTopic(topic, platform)
		}
	}
	return s.formatter.FormatTopicList(s.registry.TopicNames(), platform)
}

// Reload re-reads the topic files from disk.
func (s *Service) Reload() error {
	return s.registry.Reload()
}
