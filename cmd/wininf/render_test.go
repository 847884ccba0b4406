package main

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/dshills/wininf"
)

func TestRenderJSON(t *testing.T) {
	doc, err := wininf.Parse(strings.NewReader(
		"[Version]\r\n" +
			"Signature = \"$WINDOWS NT$\"\r\n" +
			"Provider  = %ProviderName%\r\n" +
			"[Files.Copy]\r\n" +
			"driver.sys\r\n",
	))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	out, err := renderJSON(doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	if got := gjson.GetBytes(out, "Version.0.key").String(); got != "Signature" {
		t.Errorf("expected Signature, got %q", got)
	}
	if got := gjson.GetBytes(out, "Version.0.value").String(); got != "$WINDOWS NT$" {
		t.Errorf("expected $WINDOWS NT$, got %q", got)
	}
	if got := gjson.GetBytes(out, "Version.1.value").String(); got != "%ProviderName%" {
		t.Errorf("expected %%ProviderName%%, got %q", got)
	}

	// Section names with dots are escaped in the path syntax.
	if got := gjson.GetBytes(out, `Files\.Copy.0.value`).String(); got != "driver.sys" {
		t.Errorf("expected driver.sys, got %q", got)
	}
	// Standalone values render without a key field.
	if gjson.GetBytes(out, `Files\.Copy.0.key`).Exists() {
		t.Error("OnlyValue entry should have no key field")
	}
}

func TestRenderJSONEmptySection(t *testing.T) {
	doc, err := wininf.Parse(strings.NewReader("[Empty]\n"))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	out, err := renderJSON(doc)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	res := gjson.GetBytes(out, "Empty")
	if !res.IsArray() || len(res.Array()) != 0 {
		t.Errorf("expected empty array for empty section, got %s", res.Raw)
	}
}
