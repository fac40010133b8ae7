package rag

import (
	"testing"
)

func TestChunkText(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		cfg            ChunkerConfig
		expectedChunks []string
	}{
		{
			name:           "Empty input",
			text:           "",
			cfg:            DefaultChunkerConfig(),
			expectedChunks: nil,
		},
		{
			name:           "Whitespace only",
			text:           "   \n\t   ",
			cfg:            DefaultChunkerConfig(),
			expectedChunks: nil,
		},
		{
			name: "Single sentence fits",
			text: "Hello world.",
			cfg: ChunkerConfig{
				MaxTokens:     10,
				OverlapTokens: 0,
			},
			expectedChunks: []string{"Hello world."},
		},
		{
			name: "Two sentences fit in one chunk",
			text: "Hello world. How are you?",
			cfg: ChunkerConfig{
				MaxTokens:     10,
				OverlapTokens: 0,
			},
			expectedChunks: []string{"Hello world. How are you?"},
		},
		{
			name: "Split by sentence without overlap",
			text: "First sentence. Second sentence.",
			cfg: ChunkerConfig{
				// "First sentence." is ~3 tokens: [First][ sentence][.]
				MaxTokens:     3,
				OverlapTokens: 0,
			},
			expectedChunks: []string{
				"First sentence.",
				"Second sentence.",
			},
		},
		{
			name: "Split by sentence with overlap",
			text: "Sentence one. Sentence two. Sentence three.",
			cfg: ChunkerConfig{
				// Two ~3-token sentences per chunk, one sentence of overlap.
				MaxTokens:     6,
				OverlapTokens: 3,
			},
			expectedChunks: []string{
				"Sentence one. Sentence two.",
				"Sentence two. Sentence three.",
			},
		},
		{
			name: "Long sentence forced split",
			text: "One two three four five six.",
			cfg: ChunkerConfig{
				MaxTokens:     3,
				OverlapTokens: 0,
			},
			// Tiktoken splits: [One][ two][ three] | [ four][ five][ six] | [.]
			expectedChunks: []string{
				"One two three",
				"four five six",
				".",
			},
		},
		{
			name: "Paragraph boundaries kept as sentence breaks",
			text: "Para one.\n\nPara two.",
			cfg: ChunkerConfig{
				MaxTokens:     10,
				OverlapTokens: 0,
			},
			expectedChunks: []string{"Para one. Para two."},
		},
		{
			name: "Soft-wrapped lines joined",
			text: "A line\nthat wraps. Next sentence.",
			cfg: ChunkerConfig{
				MaxTokens:     20,
				OverlapTokens: 0,
			},
			expectedChunks: []string{"A line that wraps. Next sentence."},
		},
		{
			name: "No terminal punctuation",
			text: "just a fragment",
			cfg: ChunkerConfig{
				MaxTokens:     10,
				OverlapTokens: 0,
			},
			expectedChunks: []string{"just a fragment"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := ChunkText(tt.text, tt.cfg)

			if len(chunks) != len(tt.expectedChunks) {
				t.Fatalf("got %d chunks, want %d: %#v", len(chunks), len(tt.expectedChunks), chunks)
			}
			for i, want := range tt.expectedChunks {
				if chunks[i].Text != want {
					t.Errorf("chunk %d = %q, want %q", i, chunks[i].Text, want)
				}
				if chunks[i].Index != i {
					t.Errorf("chunk %d has index %d", i, chunks[i].Index)
				}
			}
		})
	}
}

func TestChunkTextTokenBounds(t *testing.T) {
	long := ""
	for i := 0; i < 200; i++ {
		long += "Sentence number with several words in it. "
	}

	cfg := ChunkerConfig{MaxTokens: 50, OverlapTokens: 10}
	for _, c := range ChunkText(long, cfg) {
		if c.TokenSize > cfg.MaxTokens+cfg.OverlapTokens {
			t.Errorf("chunk %d has %d tokens, limit %d+%d", c.Index, c.TokenSize, cfg.MaxTokens, cfg.OverlapTokens)
		}
	}
}
