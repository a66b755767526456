package main

import "testing"

func TestAnomalyCommand_Registered(t *testing.T) {
	cmd := anomalyCmd()
	if cmd.Use != "anomaly [input-file]" {
		t.Errorf("unexpected Use: %s", cmd.Use)
	}
}

const sampleAnomalyInput = `{
  "records": [
    {"year": 2023, "filingStatus": "single", "stateOfResidence": "WA", "wages": 60000},
    {"year": 2024, "filingStatus": "single", "stateOfResidence": "WA", "wages": 62000},
    {"year": 2025, "filingStatus": "single", "stateOfResidence": "WA", "wages": 150000}
  ],
  "documentsByYear": {
    "2023": [{"formType": "W-2", "issuerName": "Acme Corp"}],
    "2024": [{"formType": "W-2", "issuerName": "Acme Corp"}],
    "2025": [{"formType": "W-2", "issuerName": "Acme Corp"}]
  }
}`

func TestAnomalyCommand_RunsAgainstSampleInput(t *testing.T) {
	path := writeTempFile(t, "anomaly.json", sampleAnomalyInput)
	cmd := anomalyCmd()
	cmd.Run(cmd, []string{path})
}
