package service

import "time"

func (ds *DietService) SetNow(now func() time.Time)   { ds.now = now }
func (hs *HealthService) SetNow(now func() time.Time) { hs.now = now }
func (cs *CoachService) SetNow(now func() time.Time)  { cs.now = now }
