package main

import "testing"

func TestChecklistCommand_Registered(t *testing.T) {
	cmd := checklistCmd()
	if cmd.Use != "checklist [input-file]" {
		t.Errorf("unexpected Use: %s", cmd.Use)
	}
}

const sampleChecklistInput = `{
  "year": 2025,
  "current": {"year": 2025, "filingStatus": "single", "stateOfResidence": "WA"},
  "prior": {"year": 2024, "filingStatus": "single", "stateOfResidence": "WA", "estimatedPaymentsMade": true},
  "priorDocuments": [{"formType": "W-2", "issuerName": "Acme Corp"}],
  "currentDocuments": []
}`

func TestChecklistCommand_RunsAgainstSampleInput(t *testing.T) {
	path := writeTempFile(t, "checklist.json", sampleChecklistInput)
	cmd := checklistCmd()
	cmd.Run(cmd, []string{path})
}
