package usecase

import (
	"context"

	"jobboard-admin/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct{}

func NewHealthUsecase() HealthUsecase {
	return &healthUsecase{}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	out := map[string]string{
		"status": "ok",
		"redis":  "ok",
	}
	if err := redis.HealthCheck(ctx); err != nil {
		out["redis"] = "unavailable"
	}
	return out
}
