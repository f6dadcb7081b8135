package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"firebase": map[string]any{
			"projectId":       "",
			"credentialsPath": "",
		},
		"firestore": map[string]any{
			"customersCollection": "customers",
		},
		"line": map[string]any{
			"channelId": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "FIREBASE_PROJECTID", want: "firebase.projectId"},
		{envKey: "FIREBASE_CREDENTIALSPATH", want: "firebase.credentialsPath"},
		{envKey: "FIRESTORE_CUSTOMERSCOLLECTION", want: "firestore.customersCollection"},
		{envKey: "LINE_CHANNELID", want: "line.channelId"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Reports.DefaultLimit != 30 {
		t.Fatalf("Reports.DefaultLimit = %d, want 30", cfg.Reports.DefaultLimit)
	}
	if cfg.Reports.MaxLimit != 100 {
		t.Fatalf("Reports.MaxLimit = %d, want 100", cfg.Reports.MaxLimit)
	}
	if cfg.Firestore.CustomersCollection != "customers" {
		t.Fatalf("Firestore.CustomersCollection = %q, want %q", cfg.Firestore.CustomersCollection, "customers")
	}
	if cfg.Firestore.ReportsCollection != "dailyReports" {
		t.Fatalf("Firestore.ReportsCollection = %q, want %q", cfg.Firestore.ReportsCollection, "dailyReports")
	}
	if cfg.Line != nil {
		t.Fatal("Line should stay nil when not configured")
	}
}

func TestApplyDefaults_LineURLs(t *testing.T) {
	cfg := &Config{Line: &LineConfig{ChannelID: "channel", ChannelSecret: "secret"}}
	applyDefaults(cfg)

	if cfg.Line.TokenURL != defaultLineTokenURL {
		t.Fatalf("Line.TokenURL = %q, want %q", cfg.Line.TokenURL, defaultLineTokenURL)
	}
	if cfg.Line.Issuer != defaultLineIssuer {
		t.Fatalf("Line.Issuer = %q, want %q", cfg.Line.Issuer, defaultLineIssuer)
	}
}
