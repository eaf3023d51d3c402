package services

import "time"

const TimeCheckInterval = timeCheckInterval

func SetClock(s *Sequencer, now func() time.Time) { s.now = now }
