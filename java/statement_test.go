package java

import (
	"slices"
	"testing"
)

func convertWithWarnings(t *testing.T, source string, opts *Options) (string, []string) {
	t.Helper()
	var warnings []string
	opts.OnWarning(func(w Warning) {
		warnings = append(warnings, w.Message)
	})
	return convertForTest(t, source, opts), warnings
}

func TestStatementConversion(t *testing.T) {
	tests := []struct {
		name     string
		java     string
		expected string
		warnings []string
	}{
		{
			name: "switch with fallthrough labels and default",
			java: `class A {
    void f(int x) {
        switch (x) {
            case 1:
            case 2:
                g();
                break;
            default:
                h();
        }
    }
}`,
			expected: `class A
{
    virtual void F(int x)
    {
        switch (x)
        {
            case 1:
            case 2:
                G();
                break;
            default:
                H();
                break;
        }
    }
}
`,
		},
		{
			name: "arrow switch rules",
			java: `class A {
    void f(int x) {
        switch (x) {
            case 1 -> g();
            default -> {
                return;
            }
        }
    }
}`,
			expected: `class A
{
    virtual void F(int x)
    {
        switch (x)
        {
            case 1:
                G();
                break;
            default:
                {
                    return;
                }
        }
    }
}
`,
		},
		{
			name: "switch expression",
			java: `class A {
    int f(int x) {
        return switch (x) {
            case 1, 2 -> 10;
            default -> throw new IllegalStateException();
        };
    }
}`,
			expected: `class A
{
    virtual int F(int x)
    {
        return x switch
        {
            1 or 2 => 10,
            _ => throw new InvalidOperationException()
        };
    }
}
`,
		},
		{
			name: "synchronized in static method locks on the type",
			java: `class Counter {
    static void inc() {
        synchronized (Counter.class) {
            n++;
        }
    }
}`,
			expected: `class Counter
{
    static void Inc()
    {
        lock (typeof(Counter))
        {
            n++;
        }
    }
}
`,
		},
		{
			name: "synchronized in instance method locks on this",
			java: `class Counter {
    void inc() {
        synchronized (lock) {
            n++;
        }
    }
}`,
			expected: `class Counter
{
    virtual void Inc()
    {
        lock (this)
        {
            n++;
        }
    }
}
`,
			warnings: []string{"Synchronized converted to lock (this); check for correctness."},
		},
		{
			name: "try with resources",
			java: `class R {
    void read() throws IOException {
        try (InputStream stream = open()) {
            use(stream);
        }
    }
}`,
			expected: `class R
{
    virtual void Read()
    {
        using (InputStream stream = Open())
        {
            Use(stream);
        }
    }
}
`,
		},
		{
			name: "try catch finally",
			java: `class R {
    void read() {
        try {
            use();
        } catch (IllegalArgumentException e) {
            fail(e);
        } finally {
            done();
        }
    }
}`,
			expected: `class R
{
    virtual void Read()
    {
        try
        {
            Use();
        }
        catch (ArgumentException e)
        {
            Fail(e);
        }
        finally
        {
            Done();
        }
    }
}
`,
		},
		{
			name: "loops",
			java: `class L {
    int sum(int n, int[] values) {
        int total = 0;
        for (int i = 0; i < n; i++) {
            total += i;
        }
        for (int v : values)
            total += v;
        while (total > 100) {
            total /= 2;
        }
        return total;
    }
}`,
			expected: `class L
{
    virtual int Sum(int n, int[] values)
    {
        int total = 0;
        for (int i = 0; i < n; i++)
        {
            total += i;
        }
        foreach (int v in values)
            total += v;
        while (total > 100)
        {
            total /= 2;
        }
        return total;
    }
}
`,
		},
		{
			name: "loop with an empty body is dropped",
			java: `class L {
    void spin() {
        while (busy());
        done();
    }
}`,
			expected: `class L
{
    virtual void Spin()
    {
        Done();
    }
}
`,
			warnings: []string{"Loop with an empty body was dropped."},
		},
		{
			name: "labeled break",
			java: `class L {
    void f() {
        outer:
        while (true) {
            break outer;
        }
    }
}`,
			expected: `class L
{
    virtual void F()
    {
        outer:
        while (true)
        {
            break;
        }
    }
}
`,
			warnings: []string{"Break with label detected, using plain break instead. Check for correctness."},
		},
		{
			name: "asserts are dropped by default",
			java: `class L {
    void f(int x) {
        assert x > 0;
        g(x);
    }
}`,
			expected: `class L
{
    virtual void F(int x)
    {
        G(x);
    }
}
`,
		},
		{
			name: "if else chain",
			java: `class L {
    int sign(int x) {
        if (x > 0) {
            return 1;
        } else if (x < 0) {
            return -1;
        } else {
            return 0;
        }
    }
}`,
			expected: `class L
{
    virtual int Sign(int x)
    {
        if (x > 0)
        {
            return 1;
        }
        else if (x < 0)
        {
            return -1;
        }
        else
        {
            return 0;
        }
    }
}
`,
		},
		{
			name: "unsigned right shift",
			java: `class Bits {
    void f(int x) {
        int y = x >>> 2;
        y >>>= 1;
    }
}`,
			expected: `class Bits
{
    virtual void F(int x)
    {
        int y = x >> 2;
        y >>= 1;
    }
}
`,
			warnings: []string{
				"Use of unsigned right shift in original code; verify correctness.",
				"Use of unsigned right shift in original code; verify correctness.",
			},
		},
		{
			name: "trailing comment at the end of a case group",
			java: `class A {
    void f(int x) {
        switch (x) {
            case 1:
                a();
                break; // one
            case 2:
                b();
                break;
        }
    }
}`,
			expected: `class A
{
    virtual void F(int x)
    {
        switch (x)
        {
            case 1:
                A();
                break; // one
            case 2:
                B();
                break;
        }
    }
}
`,
		},
		{
			name: "synchronized in static initializer locks on the type",
			java: `class Registry {
    static {
        synchronized (Registry.class) {
            n = 1;
        }
    }
}`,
			expected: `class Registry
{
    static Registry()
    {
        lock (typeof(Registry))
        {
            n = 1;
        }
    }
}
`,
		},
		{
			name: "sized array creation with trailing unsized dimensions",
			java: `class Grid {
    void f() {
        int[][] rows = new int[3][];
        int[][] cells = new int[2][3];
    }
}`,
			expected: `class Grid
{
    virtual void F()
    {
        int[,] rows = new int[3];
        int[,] cells = new int[2, 3];
    }
}
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, warnings := convertWithWarnings(t, tt.java, bareOptions())
			assertSource(t, result, tt.expected)
			if !slices.Equal(warnings, tt.warnings) {
				t.Errorf("Expected warnings %v, got %v", tt.warnings, warnings)
			}
		})
	}
}

func TestAssertToDebugAssert(t *testing.T) {
	opts := bareOptions()
	opts.UseDebugAssertForAsserts = true

	java := `class L {
    void f(int x) {
        assert x > 0 : "positive";
    }
}`
	expected := `class L
{
    virtual void F(int x)
    {
        Debug.Assert(x > 0, "positive");
    }
}
`
	assertSource(t, convertForTest(t, java, opts), expected)
}

func TestMultipleCaseLabelsBeforeCSharp9(t *testing.T) {
	opts := bareOptions()
	opts.LanguageVersion = "8.0"

	java := `class A {
    int f(int x) {
        return switch (x) {
            case 1, 2 -> 10;
            default -> 0;
        };
    }
}`
	_, warnings := convertWithWarnings(t, java, opts)
	expected := []string{"Multiple case labels require C# 9 or patterns."}
	if !slices.Equal(warnings, expected) {
		t.Errorf("Expected warnings %v, got %v", expected, warnings)
	}
}

func TestSynchronizedMethod(t *testing.T) {
	java := `class Counter {
    static synchronized void inc() {
        n++;
    }
}`
	expected := `class Counter
{
    static void Inc()
    {
        lock (typeof(Counter))
        {
            n++;
        }
    }
}
`
	assertSource(t, convertForTest(t, java, bareOptions()), expected)
}
