package notify

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hiring-flow-backend/models"
)

func TestLinks(t *testing.T) {
	t.Run(`verification link escapes candidate fields`, func(t *testing.T) {
		link := VerificationLink("http://localhost:8000", "tok-1", "Aisyah Rahman", "Senior Engineer")
		require.Equal(t, "http://localhost:8000/verify?token=tok-1&candidate=Aisyah+Rahman&position=Senior+Engineer", link)
	})

	t.Run(`approval link carries the token kind`, func(t *testing.T) {
		link := ApprovalLink("http://localhost:8000", "tok-2", models.TokenKindHiringManager1, "Aisyah Rahman", "Senior Engineer")
		require.Contains(t, link, "/approve?token=tok-2")
		require.Contains(t, link, "type=hm1")
		require.Contains(t, link, "candidate=Aisyah+Rahman")
	})

	t.Run(`recommendation link is token-only`, func(t *testing.T) {
		link := RecommendationLink("http://localhost:8000", "tok 3")
		require.Equal(t, "http://localhost:8000/recommendation-response?token=tok+3", link)
	})
}

func TestMailtoDraft(t *testing.T) {
	mailto := MailtoDraft("hm1@example.com", "Decision Required - Aisyah", "Hello,\nline two")
	require.Equal(t, "mailto:hm1@example.com?subject=Decision+Required+-+Aisyah&body=Hello%2C%0Aline+two", mailto)
}

func TestRoleLabel(t *testing.T) {
	require.Equal(t, "Head, Talent Strategy", RoleLabel(models.TokenKindVerification))
	require.Equal(t, "Hiring Manager 1", RoleLabel(models.TokenKindHiringManager1))
	require.Equal(t, "Hiring Manager 2", RoleLabel(models.TokenKindHiringManager2))
	require.Equal(t, "Approver 1", RoleLabel(models.TokenKindApprover1))
	require.Equal(t, "Approver 2", RoleLabel(models.TokenKindApprover2))
	require.Equal(t, "recommendation", RoleLabel(models.TokenKindRecommendation))
}

func TestDecisionRequest(t *testing.T) {
	handler := impl{emailFrom: "noreply@example.com"}

	t.Run(`verification draft`, func(t *testing.T) {
		draft := handler.DecisionRequest(Request{
			To:            "verifier@example.com",
			CandidateName: "Aisyah Rahman",
			Position:      "Senior Engineer",
			Kind:          models.TokenKindVerification,
			Link:          "http://localhost:8000/verify?token=tok-1",
			TTLDays:       7,
		})
		require.Equal(t, "Salary Package Verification Required - Aisyah Rahman", draft.Subject)
		require.Contains(t, draft.Body, "http://localhost:8000/verify?token=tok-1")
		require.Contains(t, draft.Body, "expire in 7 days")
		require.Contains(t, draft.Mailto, "mailto:verifier@example.com?subject=")
	})

	t.Run(`approval draft names the role`, func(t *testing.T) {
		draft := handler.DecisionRequest(Request{
			To:            "a2@example.com",
			CandidateName: "Aisyah Rahman",
			Position:      "Senior Engineer",
			Kind:          models.TokenKindApprover2,
			Link:          "http://localhost:8000/approve?token=tok-2",
			TTLDays:       7,
		})
		require.Equal(t, "Approver 2 Decision Required - Aisyah Rahman", draft.Subject)
		require.Contains(t, draft.Body, "Your decision as Approver 2 is requested")
	})

	t.Run(`recommendation draft`, func(t *testing.T) {
		draft := handler.DecisionRequest(Request{
			To:            "ref@example.com",
			CandidateName: "Aisyah Rahman",
			Position:      "Senior Engineer",
			Kind:          models.TokenKindRecommendation,
			Link:          "http://localhost:8000/recommendation-response?token=tok-3",
			TTLDays:       30,
		})
		require.Equal(t, "Recommendation Request - Aisyah Rahman", draft.Subject)
		require.Contains(t, draft.Body, "provide a recommendation for Aisyah Rahman")
		require.Contains(t, draft.Body, "expire in 30 days")
	})
}
