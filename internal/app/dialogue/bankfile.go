package dialogue

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadContent reads a response bank from a YAML file. Sections left
// out of the file keep their built-in values, so a deployment can
// swap, say, only the referral contacts.
func LoadContent(path string) (Content, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("reading bank file: %w", err)
	}

	var override Content
	if err := yaml.Unmarshal(raw, &override); err != nil {
		return Content{}, fmt.Errorf("parsing bank file %s: %w", path, err)
	}

	content := DefaultContent()
	if len(override.Greetings) > 0 {
		content.Greetings = override.Greetings
	}
	for emo, set := range override.Responses {
		content.Responses[emo] = set
	}
	if len(override.FollowUps) > 0 {
		content.FollowUps = override.FollowUps
	}
	if len(override.Referrals) > 0 {
		content.Referrals = override.Referrals
	}
	if override.Crisis != "" {
		content.Crisis = override.Crisis
	}

	if err := content.Validate(); err != nil {
		return Content{}, err
	}
	return content, nil
}
