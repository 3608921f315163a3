package service

import "time"

func (s *Service) Sweep(now time.Time) int {
	return s.sweep(now)
}
