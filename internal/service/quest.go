package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/pageza/calorie-quest/backend/internal/logger"
	"github.com/pageza/calorie-quest/backend/internal/nutrition"
)

const (
	questKeyPrefix = "quest:"
	questTTL       = 26 * time.Hour
)

// DailyQuest is the small healthy-habit challenge for a calendar day.
type DailyQuest struct {
	Quest       string    `json:"quest"`
	Date        string    `json:"date"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// QuestService hands out one quest per day. With Redis the quest is cached
// per date, without it a new one is generated on every call.
type QuestService struct {
	ai    AIGateway
	redis *redis.Client
	now   Clock
	log   *zap.Logger
}

var _ IQuestService = (*QuestService)(nil)

// NewQuestService creates a QuestService. rdb may be nil.
func NewQuestService(ai AIGateway, rdb *redis.Client, now Clock) *QuestService {
	return &QuestService{ai: ai, redis: rdb, now: now, log: logger.Named("quest")}
}

func (s *QuestService) GetDailyQuest(ctx context.Context) DailyQuest {
	now := s.now()
	date := nutrition.DateString(now)
	key := questKeyPrefix + date

	if s.redis != nil {
		cached, err := s.redis.Get(ctx, key).Bytes()
		switch {
		case err == nil:
			var q DailyQuest
			if err := json.Unmarshal(cached, &q); err == nil && q.Quest != "" {
				return q
			}
		case !errors.Is(err, redis.Nil):
			s.log.Warn("quest cache read failed", zap.Error(err))
		}
	}

	q := DailyQuest{Quest: s.ai.GenerateDailyQuest(ctx), Date: date, GeneratedAt: now}

	if s.redis != nil {
		data, _ := json.Marshal(q)
		// SetNX keeps the first quest if two requests race.
		ok, err := s.redis.SetNX(ctx, key, data, questTTL).Result()
		if err != nil {
			s.log.Warn("quest cache write failed", zap.Error(err))
		} else if !ok {
			if cached, err := s.redis.Get(ctx, key).Bytes(); err == nil {
				var existing DailyQuest
				if json.Unmarshal(cached, &existing) == nil && existing.Quest != "" {
					return existing
				}
			}
		}
	}
	return q
}
