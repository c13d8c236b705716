package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/deeplmock/internal/deepl"
	mock_deepl "github.com/at-ishikawa/deeplmock/internal/mocks/deepl"
)

func TestRunChecks(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name            string
		setupMock       func(m *mock_deepl.MockAPI)
		wantErr         string
		wantOutContains []string
	}{
		{
			name: "all checks pass",
			setupMock: func(m *mock_deepl.MockAPI) {
				m.EXPECT().Health(gomock.Any()).Return("Access Successful", nil)
				m.EXPECT().Translate(gomock.Any(), deepl.TranslateRequest{
					TargetLang: "ja",
					Texts:      []string{"Hello"},
				}).Return([]string{"こんにちは"}, nil)
				m.EXPECT().Translate(gomock.Any(), deepl.TranslateRequest{
					SourceLang: "en",
					TargetLang: "en",
					Texts:      []string{"Hello"},
				}).Return([]string{"Hello"}, nil)
				m.EXPECT().Usage(gomock.Any()).Return(deepl.Usage{
					CharacterCount: 5,
					CharacterLimit: 500_000,
				}, nil)
				m.EXPECT().Languages(gomock.Any(), "target").Return([]deepl.Language{
					{Language: "JA", Name: "Japanese"},
				}, nil)
				m.EXPECT().CreateGlossary(gomock.Any(), gomock.Any()).Return(deepl.Glossary{
					GlossaryID: "glossary-id",
				}, nil)
				m.EXPECT().PatchGlossary(gomock.Any(), "glossary-id", gomock.Any()).Return(nil)
				m.EXPECT().DeleteGlossary(gomock.Any(), "glossary-id").Return(nil)
			},
			wantOutContains: []string{
				"✓ health",
				"✓ translate",
				"✓ identity translate",
				"✓ usage",
				"✓ languages",
				"✓ glossaries",
			},
		},
		{
			name: "health check fails",
			setupMock: func(m *mock_deepl.MockAPI) {
				m.EXPECT().Health(gomock.Any()).Return("", errors.New("connection refused"))
				m.EXPECT().Translate(gomock.Any(), deepl.TranslateRequest{
					TargetLang: "ja",
					Texts:      []string{"Hello"},
				}).Return([]string{"こんにちは"}, nil)
				m.EXPECT().Translate(gomock.Any(), deepl.TranslateRequest{
					SourceLang: "en",
					TargetLang: "en",
					Texts:      []string{"Hello"},
				}).Return([]string{"Hello"}, nil)
				m.EXPECT().Usage(gomock.Any()).Return(deepl.Usage{CharacterLimit: 500_000}, nil)
				m.EXPECT().Languages(gomock.Any(), "target").Return([]deepl.Language{
					{Language: "JA", Name: "Japanese"},
				}, nil)
				m.EXPECT().CreateGlossary(gomock.Any(), gomock.Any()).Return(deepl.Glossary{
					GlossaryID: "glossary-id",
				}, nil)
				m.EXPECT().PatchGlossary(gomock.Any(), "glossary-id", gomock.Any()).Return(nil)
				m.EXPECT().DeleteGlossary(gomock.Any(), "glossary-id").Return(nil)
			},
			wantErr: "1 of 6 checks failed",
			wantOutContains: []string{
				"✗ health: connection refused",
				"✓ translate",
			},
		},
		{
			name: "usage reports zero limit",
			setupMock: func(m *mock_deepl.MockAPI) {
				m.EXPECT().Health(gomock.Any()).Return("Access Successful", nil)
				m.EXPECT().Translate(gomock.Any(), deepl.TranslateRequest{
					TargetLang: "ja",
					Texts:      []string{"Hello"},
				}).Return([]string{"こんにちは"}, nil)
				m.EXPECT().Translate(gomock.Any(), deepl.TranslateRequest{
					SourceLang: "en",
					TargetLang: "en",
					Texts:      []string{"Hello"},
				}).Return([]string{"Hello"}, nil)
				m.EXPECT().Usage(gomock.Any()).Return(deepl.Usage{}, nil)
				m.EXPECT().Languages(gomock.Any(), "target").Return([]deepl.Language{
					{Language: "JA", Name: "Japanese"},
				}, nil)
				m.EXPECT().CreateGlossary(gomock.Any(), gomock.Any()).Return(deepl.Glossary{
					GlossaryID: "glossary-id",
				}, nil)
				m.EXPECT().PatchGlossary(gomock.Any(), "glossary-id", gomock.Any()).Return(nil)
				m.EXPECT().DeleteGlossary(gomock.Any(), "glossary-id").Return(nil)
			},
			wantErr: "1 of 6 checks failed",
			wantOutContains: []string{
				"✗ usage: non-positive character limit 0",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			mockClient := mock_deepl.NewMockAPI(ctrl)
			tc.setupMock(mockClient)

			var out bytes.Buffer
			err := runChecks(context.Background(), mockClient, &out)
			if tc.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			for _, want := range tc.wantOutContains {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
