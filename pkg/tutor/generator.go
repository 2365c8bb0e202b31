package tutor

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kilhoshin/aissam/pkg/llm"
)

const (
	maxAttempts    = 3
	defaultTimeout = 30 * time.Second
)

// Korean apology strings returned to students when generation fails. The
// frontend renders these verbatim, so they stay user-facing rather than
// becoming error returns.
const (
	apologyRetry   = "죄송합니다. 현재 응답을 생성할 수 없습니다. 다시 시도해 주세요."
	apologyTimeout = "죄송합니다. 응답을 생성할 수 없습니다."
)

func apologyError(err error) string {
	return fmt.Sprintf("죄송합니다. 오류가 발생했습니다: %s", err.Error())
}

// Question carries everything needed to answer one student turn.
type Question struct {
	Subject   Subject
	Text      string
	History   []Turn
	ImageData []byte
	ImageMIME string
}

// Generator produces tutor replies through an LLM provider. Failures never
// surface as errors; students always get a readable reply.
type Generator struct {
	provider llm.Provider
	timeout  time.Duration
}

func NewGenerator(provider llm.Provider, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Generator{provider: provider, timeout: timeout}
}

// Reply asks the model for a tutor answer, retrying transient failures up to
// maxAttempts within the generator timeout.
func (g *Generator) Reply(ctx context.Context, q Question) string {
	prompt := buildPrompt(q)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	options := []llm.Option{}
	if len(q.ImageData) > 0 {
		options = append(options, llm.WithImage(q.ImageData, q.ImageMIME))
	}

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if ctx.Err() != nil {
			return apologyTimeout
		}

		answer, err := g.provider.Generate(ctx, prompt, options...)
		if err != nil {
			lastErr = err
			continue
		}

		answer = strings.TrimSpace(answer)
		if answer != "" {
			return answer
		}
	}

	if ctx.Err() != nil {
		return apologyTimeout
	}
	if lastErr != nil {
		return apologyError(lastErr)
	}
	return apologyRetry
}

func buildPrompt(q Question) string {
	transcript := renderTranscript(q.History)

	if len(q.ImageData) > 0 {
		return fmt.Sprintf(`%s

%s**이미지 분석 및 문제 해결 지침:**

학생이 수학 문제 이미지를 업로드했습니다. 위의 이전 대화 내용을 참고하여 연속성 있는 답변을 제공하세요.

다음 순서로 응답해주세요:
1. **이전 대화 연결**: 앞선 대화와 관련이 있다면 언급하고 연결하세요
2. **문제 인식**: 이미지에서 수학 문제를 정확히 읽어주세요
3. **문제 유형 파악**: 어떤 수학 개념/단원의 문제인지 명시하세요
4. **즉시 풀이 시작**: 문제를 다시 써주지 말고 바로 단계별 해결 과정을 제시하세요
5. **자세한 설명**: 각 단계의 수학적 근거와 공식을 명확히 설명하세요
6. **최종 답**: 정답과 함께 검산 과정을 포함하세요

**중요**: 이전 대화 맥락을 고려하여 연속성 있는 학습 지도를 해주세요.

학생 질문: %s

이미지의 수학 문제를 분석하고 즉시 풀이를 시작하세요.`, q.Subject.PromptTemplate(), transcript, q.Text)
	}

	return fmt.Sprintf(`%s

%s**대화 연속성 중요**: 위의 이전 대화 내용을 반드시 참고하여 연속적이고 일관된 답변을 제공하세요. 학생이 이전에 어떤 질문을 했고, 어떤 도움이 필요한지 고려하여 답변하세요.

학생 질문: %s`, q.Subject.PromptTemplate(), transcript, q.Text)
}
