package search

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/competia/searchapi/internal/logger"
)

// Queries shaped like a competency standard code ("EC" plus a digit)
// get code-prefix completions from the standards catalog.
var standardCodePattern = regexp.MustCompile(`(?i)^ec\d`)

const suggestionLimit = 5

// suggestions returns query refinement candidates. Only standard-code
// shaped queries produce any today; lookup failures degrade to none.
func (s *Service) suggestions(ctx context.Context, query string) []string {
	if s.suggest == nil {
		return nil
	}
	trimmed := strings.TrimSpace(query)
	if !standardCodePattern.MatchString(trimmed) {
		return nil
	}

	codes, err := s.suggest.CodesWithPrefix(ctx, trimmed, suggestionLimit)
	if err != nil {
		logger.FromContext(ctx).Debug("suggestion lookup failed", zap.Error(err))
		return nil
	}
	return codes
}
