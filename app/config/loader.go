package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Placeholder substituted with the article text in the user prompt template.
const TextPlaceholder = "{{text}}"

// LoadPromptTemplate reads the system and user prompt templates from a YAML file.
func LoadPromptTemplate(path string) (*PromptTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Source: path, Err: fmt.Errorf("failed to read prompts file: %w", err)}
	}

	var template PromptTemplate
	if err := yaml.Unmarshal(data, &template); err != nil {
		return nil, &Error{Source: path, Err: fmt.Errorf("failed to parse YAML: %w", err)}
	}

	if err := validatePromptTemplate(&template); err != nil {
		return nil, &Error{Source: path, Err: err}
	}

	return &template, nil
}

func validatePromptTemplate(template *PromptTemplate) error {
	if template.UserPromptTemplate == "" {
		return fmt.Errorf("user_prompt_template is required")
	}

	switch strings.Count(template.UserPromptTemplate, TextPlaceholder) {
	case 0:
		return fmt.Errorf("user_prompt_template must contain the %s placeholder", TextPlaceholder)
	case 1:
		return nil
	default:
		return fmt.Errorf("user_prompt_template must contain the %s placeholder exactly once", TextPlaceholder)
	}
}

// LoadCredential reads an API key from a file, trimming surrounding whitespace.
func LoadCredential(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Source: path, Err: fmt.Errorf("failed to read credential file: %w", err)}
	}

	key := strings.TrimSpace(string(data))
	if key == "" {
		return "", &Error{Source: path, Err: fmt.Errorf("credential file is empty")}
	}

	return key, nil
}

// LoadFeeds reads the scheduled sweep feed list from a YAML file.
// A missing file is treated as an empty list so the service can run
// without any scheduled feeds configured.
func LoadFeeds(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &Error{Source: path, Err: fmt.Errorf("failed to read feeds file: %w", err)}
	}

	var list FeedList
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, &Error{Source: path, Err: fmt.Errorf("failed to parse YAML: %w", err)}
	}

	feeds := make([]string, 0, len(list.Feeds))
	for i, url := range list.Feeds {
		url = strings.TrimSpace(url)
		if url == "" {
			return nil, &Error{Source: path, Err: fmt.Errorf("feed URL at index %d is empty", i)}
		}
		feeds = append(feeds, url)
	}

	return feeds, nil
}
