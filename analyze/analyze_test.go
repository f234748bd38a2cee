package analyze

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/i18nlint/i18nlint/annotation"
	"github.com/i18nlint/i18nlint/classify"
	"github.com/i18nlint/i18nlint/locales"
	"github.com/i18nlint/i18nlint/scan"
)

func newEngine() *Engine {
	return New(classify.New(classify.Options{}), annotation.DefaultMarkers)
}

func writeFiles(t *testing.T, files map[string]string) []string {
	t.Helper()
	tmp := t.TempDir()
	for name, content := range files {
		p := filepath.Join(tmp, name)
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	paths, err := scan.FindSources([]string{tmp}, []string{".tsx", ".ts"})
	if err != nil {
		t.Fatal(err)
	}
	return paths
}

func TestIssueFinding(t *testing.T) {
	t.Parallel()

	files := writeFiles(t, map[string]string{
		"App.tsx": `const msg = "Please enter a valid email";`,
	})

	report := newEngine().Run(files, nil)

	if len(report.Findings) != 1 {
		t.Fatalf("Findings = %#v, want exactly one", report.Findings)
	}
	f := report.Findings[0]
	if f.Disposition != Issue || f.Line != 1 || f.Text != "Please enter a valid email" {
		t.Fatalf("finding = %+v, want issue at line 1", f)
	}
	if report.Summary.Issues != 1 || report.Summary.FilesScanned != 1 {
		t.Fatalf("summary = %+v", report.Summary)
	}
}

func TestTechnicalLiteralsProduceNoFinding(t *testing.T) {
	t.Parallel()

	files := writeFiles(t, map[string]string{
		"App.tsx": `const cls = "flex items-center gap-2";`,
	})

	report := newEngine().Run(files, nil)

	if len(report.Findings) != 0 {
		t.Fatalf("Findings = %#v, want none for styling string", report.Findings)
	}
}

func TestAnnotatedLiteralIsIgnored(t *testing.T) {
	t.Parallel()

	files := writeFiles(t, map[string]string{
		"App.tsx": `const brand = "CyberAcme Pro"; // i18n-ignore`,
	})

	report := newEngine().Run(files, nil)

	if len(report.Findings) != 1 || report.Findings[0].Disposition != IgnoredAnnotated {
		t.Fatalf("Findings = %#v, want one annotated-ignored finding", report.Findings)
	}
	if report.Summary.Issues != 0 || report.Summary.Ignored != 1 {
		t.Fatalf("summary = %+v", report.Summary)
	}
}

func TestBlockSuppressionBoundaries(t *testing.T) {
	t.Parallel()

	content := `// i18n-ignore-block
const a = "Inside the block";
// i18n-ignore-block-end
const b = "Outside the block";`
	files := writeFiles(t, map[string]string{"App.tsx": content})

	report := newEngine().Run(files, nil)

	if len(report.Findings) != 2 {
		t.Fatalf("Findings = %#v, want two", report.Findings)
	}
	if report.Findings[0].Disposition != IgnoredAnnotated {
		t.Fatalf("finding inside block = %+v, want ignored", report.Findings[0])
	}
	if report.Findings[1].Disposition != Issue {
		t.Fatalf("finding after block = %+v, want issue", report.Findings[1])
	}
}

func TestWholeFileIgnoreIsRetroactive(t *testing.T) {
	t.Parallel()

	content := `const early = "Before the marker";
const late = "After the marker";
// i18n-ignore-file`
	files := writeFiles(t, map[string]string{"App.tsx": content})

	report := newEngine().Run(files, nil)

	if len(report.Findings) != 2 {
		t.Fatalf("Findings = %#v, want two", report.Findings)
	}
	for _, f := range report.Findings {
		if f.Disposition != IgnoredAnnotated {
			t.Fatalf("finding = %+v, want ignored under whole-file marker", f)
		}
	}
	if report.Summary.Issues != 0 {
		t.Fatalf("Issues = %d, want 0", report.Summary.Issues)
	}
}

func TestKnownKeyShortCircuit(t *testing.T) {
	t.Parallel()

	files := writeFiles(t, map[string]string{
		"App.tsx": `const key = "auth.login.title";`,
	})
	catalogs := []*locales.Catalog{
		{Locale: "en", Keys: locales.KeySet{"auth.login.title": true}},
	}

	report := newEngine().Run(files, catalogs)

	if len(report.Findings) != 1 || report.Findings[0].Disposition != IgnoredKnownKey {
		t.Fatalf("Findings = %#v, want one known-key finding", report.Findings)
	}
}

// A key defined in any locale counts as known, even when another locale
// lacks it.
func TestKnownKeyUsesUnionOfLocales(t *testing.T) {
	t.Parallel()

	files := writeFiles(t, map[string]string{
		"App.tsx": `const key = "auth.login.title";`,
	})
	catalogs := []*locales.Catalog{
		{Locale: "en", Keys: locales.KeySet{"auth.login.title": true}},
		{Locale: "sv", Keys: locales.KeySet{}},
	}

	report := newEngine().Run(files, catalogs)

	if len(report.Findings) != 1 || report.Findings[0].Disposition != IgnoredKnownKey {
		t.Fatalf("Findings = %#v, want known-key finding via union", report.Findings)
	}
}

// Annotation suppression is checked before the known-key test.
func TestAnnotationWinsOverKnownKey(t *testing.T) {
	t.Parallel()

	files := writeFiles(t, map[string]string{
		"App.tsx": `const key = "auth.login.title"; // i18n-ignore`,
	})
	catalogs := []*locales.Catalog{
		{Locale: "en", Keys: locales.KeySet{"auth.login.title": true}},
	}

	report := newEngine().Run(files, catalogs)

	if len(report.Findings) != 1 || report.Findings[0].Disposition != IgnoredAnnotated {
		t.Fatalf("Findings = %#v, want annotated disposition", report.Findings)
	}
}

func TestMissingKeyDetection(t *testing.T) {
	t.Parallel()

	files := writeFiles(t, map[string]string{
		"App.tsx": `const title = t('auth.login.title'); const home = t('nav.home');`,
	})
	catalogs := []*locales.Catalog{
		{Locale: "en", Keys: locales.KeySet{"auth.login.title": true, "nav.home": true}},
		{Locale: "sv", Keys: locales.KeySet{"nav.home": true}},
	}

	report := newEngine().Run(files, catalogs)

	if !reflect.DeepEqual(report.UsedKeys, []string{"auth.login.title", "nav.home"}) {
		t.Fatalf("UsedKeys = %#v", report.UsedKeys)
	}
	if _, ok := report.MissingKeys["en"]; ok {
		t.Fatal("en reported missing keys, want none")
	}
	if got := report.MissingKeys["sv"]; !reflect.DeepEqual(got, []string{"auth.login.title"}) {
		t.Fatalf("sv missing = %#v, want [auth.login.title]", got)
	}
	if !reflect.DeepEqual(report.MissingLocales(), []string{"sv"}) {
		t.Fatalf("MissingLocales = %#v", report.MissingLocales())
	}
}

func TestUnreadableFileIsSkipped(t *testing.T) {
	t.Parallel()

	files := writeFiles(t, map[string]string{
		"App.tsx": `const msg = "Hello there";`,
	})
	files = append(files, filepath.Join(t.TempDir(), "missing.tsx"))

	report := newEngine().Run(files, nil)

	if len(report.Skipped) != 1 {
		t.Fatalf("Skipped = %#v, want one entry", report.Skipped)
	}
	if report.Summary.FilesScanned != 1 {
		t.Fatalf("FilesScanned = %d, want 1", report.Summary.FilesScanned)
	}
	if len(report.Findings) != 1 {
		t.Fatalf("Findings = %#v, want the readable file analyzed", report.Findings)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	t.Parallel()

	files := writeFiles(t, map[string]string{
		"a/First.tsx":  `const a = "Strings in the first file"; t('k.one')`,
		"b/Second.tsx": `const b = "Strings in the second file"; t('k.two')`,
	})
	catalogs := []*locales.Catalog{
		{Locale: "en", Keys: locales.KeySet{"k.one": true}},
	}

	engine := newEngine()
	first := engine.Run(files, catalogs)
	second := engine.Run(files, catalogs)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated runs differ:\n%#v\n%#v", first, second)
	}
	// File order follows the sorted scan order.
	for i := 1; i < len(first.Findings); i++ {
		if first.Findings[i-1].File > first.Findings[i].File {
			t.Fatalf("findings out of traversal order: %#v", first.Findings)
		}
	}
}
