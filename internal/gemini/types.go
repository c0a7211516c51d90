// Copyright (c) 2025 Mohamed Abdalla
// SPDX-License-Identifier: AGPL-3.0-or-later

package gemini

// =============================================================================
// WIRE TYPES
// =============================================================================

// GenerateRequest is the generateContent request body.
type GenerateRequest struct {
	Contents []Content `json:"contents"`
}

// Content is one turn of request content.
type Content struct {
	Parts []Part `json:"parts"`
}

// Part is a single piece of content. Only text parts are sent.
type Part struct {
	Text string `json:"text"`
}

// GenerateResponse is the generateContent response body. Only the fields the
// client reads are declared.
type GenerateResponse struct {
	Candidates []Candidate `json:"candidates"`
}

// Candidate is one completion candidate.
type Candidate struct {
	Content CandidateContent `json:"content"`
}

// CandidateContent holds the candidate's parts.
type CandidateContent struct {
	Parts []Part `json:"parts"`
}

// newGenerateRequest wraps a single user utterance in the request shape.
func newGenerateRequest(utterance string) GenerateRequest {
	return GenerateRequest{
		Contents: []Content{
			{Parts: []Part{{Text: utterance}}},
		},
	}
}

// reply extracts candidates[0].content.parts[0].text. The boolean is false
// when the response does not have that shape.
func (r *GenerateResponse) reply() (string, bool) {
	if len(r.Candidates) == 0 {
		return "", false
	}
	parts := r.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", false
	}
	return parts[0].Text, true
}
