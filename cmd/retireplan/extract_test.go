package main

import "testing"

func TestExtractCommand_Registered(t *testing.T) {
	cmd := extractCmd()
	if cmd.Use != "extract [document-file]..." {
		t.Errorf("unexpected Use: %s", cmd.Use)
	}
}

const sampleW2Text = "Form W-2 Wage and Tax Statement\nEmployer's name: Acme Corp\n1 Wages, tips, other comp. $80,000.00\n2 Federal income tax withheld $15,000.00"

func TestExtractCommand_RunsAgainstSampleDocument(t *testing.T) {
	path := writeTempFile(t, "w2.txt", sampleW2Text)
	cmd := extractCmd()
	cmd.Run(cmd, []string{path})
}
