package classify

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases cyrillic",
			input: "ПРИВЕТ",
			want:  "привет",
		},
		{
			name:  "strips punctuation keeping hyphens",
			input: "мастер-класс, когда?!",
			want:  "мастер-класс",
		},
		{
			name:  "collapses whitespace",
			input: "найти   сотрудника \t отдела",
			want:  "найти сотрудника отдела",
		},
		{
			name:  "removes stop words at word boundaries",
			input: "кто знает python",
			want:  "знает python",
		},
		{
			name:  "stop word inside a longer token survives",
			input: "никто знает",
			want:  "никто знает",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "only stop words",
			input: "что это было",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Concurrent(t *testing.T) {
	// Batch processing normalizes queries from many goroutines at once;
	// run under -race to catch shared caser state.
	const workers = 8

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := Normalize("КТО знает Python и Docker?")
				assert.Equal(t, "знает python docker", got)
			}
		}()
	}
	wg.Wait()
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"Какие задачи в работе у Ивана?",
		"КТО знает Python!!!",
		"что будет на неделе",
		"",
	}

	for _, input := range inputs {
		once := Normalize(input)
		assert.Equal(t, once, Normalize(once), "input %q", input)
	}
}
