package output_test

import (
	"bytes"
	"testing"

	"geotask/internal/output"
	"geotask/internal/service"
)

func TestFormatTask(t *testing.T) {
	tests := []struct {
		name string
		num  int
		task service.Task
		want string
	}{
		{
			name: "open task with location",
			num:  1,
			task: service.Task{Title: "Buy milk", Location: &service.Location{Latitude: 1, Longitude: 2}},
			want: "   1  [ ] Buy milk  (1.0000, 2.0000)\n",
		},
		{
			name: "completed task without location",
			num:  12,
			task: service.Task{Title: "Walk dog", Completed: true},
			want: "  12  [x] Walk dog\n",
		},
		{
			name: "empty title",
			num:  2,
			task: service.Task{Title: "   "},
			want: "   2  [ ] (untitled)\n",
		},
		{
			name: "newlines flattened",
			num:  3,
			task: service.Task{Title: "line\none"},
			want: "   3  [ ] line one\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			output.FormatTask(&buf, tt.num, tt.task)
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}

func TestFormatSession(t *testing.T) {
	var buf bytes.Buffer
	output.FormatSession(&buf, "a@b.com", "user-7")
	if buf.String() != "a@b.com (user-7)\n" {
		t.Errorf("unexpected output: %q", buf.String())
	}
}
