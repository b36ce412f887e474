package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
)

type SummaryService struct {
	LLM *LLMClient
}

func NewSummaryService(llm *LLMClient) *SummaryService {
	return &SummaryService{LLM: llm}
}

// Summarize forwards the submitted form responses to the model and returns its
// text verbatim. The shape of responses is unconstrained and a malformed body
// is not rejected — it just serializes as null into the prompt. The 80-word
// bound is an instruction to the model, not a guarantee.
func (s *SummaryService) Summarize(c *fiber.Ctx) error {
	var req struct {
		Responses interface{} `json:"responses"`
	}
	_ = c.BodyParser(&req)

	serialized, _ := json.Marshal(req.Responses)

	summary, err := s.LLM.CreateCompletion([]ChatMessage{
		{
			Role:    "system",
			Content: "You summarize icebreaker answers for the host of a social event. Be warm, specific, and concise.",
		},
		{
			Role:    "user",
			Content: fmt.Sprintf("Summarize the following question/answer pairs in under 80 words:\n%s", serialized),
		},
	})
	if err != nil {
		// Underlying cause stays server-side; the caller gets a fixed message.
		log.Printf("[SUMMARY] completion failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate summary"})
	}

	return c.JSON(fiber.Map{"summary": summary})
}
