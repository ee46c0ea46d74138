package out

import (
	"context"

	"tempo/internal/modules/progress/domain"
	sessionin "tempo/internal/modules/session/port/in"
)

// SessionLiveSource reads today's unflushed study seconds from the
// running session.
type SessionLiveSource struct {
	session sessionin.Usecase
}

func NewSessionLiveSource(session sessionin.Usecase) SessionLiveSource {
	return SessionLiveSource{session: session}
}

func (s SessionLiveSource) TodayLive(ctx context.Context) (domain.Live, error) {
	live, err := s.session.Live(ctx)
	if err != nil {
		return domain.Live{}, err
	}
	return domain.Live{DayKey: live.DayKey, Seconds: live.Seconds}, nil
}
