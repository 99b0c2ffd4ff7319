package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"addline/internal/report"
)

func TestReporter(t *testing.T) {
	tests := []struct {
		name string
		emit func(r *report.Reporter)
		want string
	}{
		{
			name: "inserted",
			emit: func(r *report.Reporter) { r.Inserted("inserted", 2) },
			want: "Insert inserted to line 2\n",
		},
		{
			name: "not found",
			emit: func(r *report.Reporter) { r.NotFound("zzz") },
			want: "pattern zzz not found!\n",
		},
		{
			name: "replaced",
			emit: func(r *report.Reporter) { r.Replaced("[0-9]+", "X") },
			want: "Replace [0-9]+ to X\n",
		},
		{
			name: "tabs are kept",
			emit: func(r *report.Reporter) { r.Inserted("\tindented", 1) },
			want: "Insert \tindented to line 1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.emit(report.New(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}
