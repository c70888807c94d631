package out

import (
	"context"
	"fmt"
	"slices"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"wayne/internal/modules/mission/domain"
	missionout "wayne/internal/modules/mission/port/out"
)

// CachingPlanner remembers drafts for recently seen objectives. Only drafts
// are cached; missions still receive fresh ids on every plan.
type CachingPlanner struct {
	next  missionout.Planner
	cache *lru.Cache[string, []domain.Draft]
}

// NewCachingPlanner wraps next with an LRU of size entries. A non-positive
// size disables caching and returns next unchanged.
func NewCachingPlanner(next missionout.Planner, size int) (missionout.Planner, error) {
	if size <= 0 {
		return next, nil
	}
	cache, err := lru.New[string, []domain.Draft](size)
	if err != nil {
		return nil, fmt.Errorf("create planner cache: %w", err)
	}
	return &CachingPlanner{next: next, cache: cache}, nil
}

func (p *CachingPlanner) Decompose(ctx context.Context, objectives string) ([]domain.Draft, error) {
	key := cacheKey(objectives)
	if drafts, ok := p.cache.Get(key); ok {
		return slices.Clone(drafts), nil
	}
	drafts, err := p.next.Decompose(ctx, objectives)
	if err != nil {
		return nil, err
	}
	if len(drafts) > 0 {
		p.cache.Add(key, slices.Clone(drafts))
	}
	return drafts, nil
}

func cacheKey(objectives string) string {
	return strings.Join(strings.Fields(strings.ToLower(objectives)), " ")
}
