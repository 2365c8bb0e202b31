package tutor

import (
	"context"
	"fmt"
	"strings"
)

const minQuestionsForAnalysis = 3

// AnalyzePattern summarizes a student's recent questions into study advice.
// It returns "" when there is too little history or when generation fails;
// callers treat an empty result as "no analysis available".
func (g *Generator) AnalyzePattern(ctx context.Context, recentQuestions []string) string {
	if len(recentQuestions) < minQuestionsForAnalysis {
		return ""
	}

	// Only the most recent questions matter for spotting current weak areas.
	if len(recentQuestions) > 10 {
		recentQuestions = recentQuestions[len(recentQuestions)-10:]
	}

	var lines []string
	for _, q := range recentQuestions {
		lines = append(lines, "- "+q)
	}
	questionsText := strings.Join(lines, "\n")

	prompt := fmt.Sprintf(`다음은 학생이 최근에 질문한 내용들입니다:

%s

이 질문 패턴을 분석하여:
1. 학생의 취약한 단원이나 개념
2. 자주 실수하는 유형
3. 보강이 필요한 학습 영역
4. 추천 학습 방법

을 간단히 정리해서 조언해주세요.`, questionsText)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	advice, err := g.provider.Generate(ctx, prompt)
	if err != nil {
		return ""
	}
	return advice
}
