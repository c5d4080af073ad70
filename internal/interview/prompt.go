package interview

import (
	"fmt"

	"github.com/leslie0605/mock-interview-platform/internal/session"
)

const systemPromptTemplate = `You are an interviewer from the company %s.
Today there is a candidate interviewing for the position %s.
Here is the job description: %s.
The candidate's resume is as follows: %s.
Please ask relevant interview questions based on the resume and the candidate's responses.
Ask questions one by one like a real interview.
Please start with a general question like "Tell me about yourself".`

// SystemPrompt renders the interviewer instructions from the session fields.
// It is rebuilt from the current session on every turn; history never stores it.
func SystemPrompt(s session.Session) string {
	return fmt.Sprintf(systemPromptTemplate, s.CompanyName, s.RoleName, s.JobDescription, s.ResumeText)
}
