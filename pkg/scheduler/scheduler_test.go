package scheduler

import "testing"

func TestValidateCronExpression(t *testing.T) {
	tests := []struct {
		expr    string
		wantErr bool
	}{
		{"0 * * * *", false},
		{"*/5 * * * *", false},
		{"not a cron", true},
		{"61 * * * *", true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			err := ValidateCronExpression(tt.expr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateCronExpression(%q) error = %v, wantErr %v", tt.expr, err, tt.wantErr)
			}
		})
	}
}

func TestSchedulerJobs(t *testing.T) {
	s := NewEventScheduler()

	if err := s.AddJob("overdue", "0 * * * *", func() {}); err != nil {
		t.Fatalf("AddJob: %v", err)
	}
	if err := s.AddJob("overdue", "0 * * * *", func() {}); err == nil {
		t.Fatal("duplicate job id should fail")
	}

	info, ok := s.GetJob("overdue")
	if !ok {
		t.Fatal("job not found")
	}
	if info.CronExpr != "0 * * * *" || info.NextRun == nil {
		t.Fatalf("unexpected job info: %+v", info)
	}

	s.Start()
	if !s.IsRunning() {
		t.Fatal("scheduler should be running")
	}
	s.Stop()
	if s.IsRunning() {
		t.Fatal("scheduler should be stopped")
	}

	if _, ok := s.GetJob("missing"); ok {
		t.Fatal("unknown job id should not be found")
	}
}
