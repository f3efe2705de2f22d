package java

import (
	"slices"
	"strconv"
	"testing"
)

func TestDeclarationConversion(t *testing.T) {
	tests := []struct {
		name     string
		java     string
		expected string
		warnings []string
	}{
		{
			name: "class members",
			java: `@Deprecated
public final class Point extends Base implements Comparable<Point> {
    private static final int ORIGIN = 0;
    protected volatile int x, y;

    public Point(int x) {
        this(x, 0);
    }

    Point(int x, int y) {
        super(x);
        this.x = x;
    }

    @Override
    public String toString() {
        return "p";
    }

    public int getX() {
        return x;
    }
}`,
			expected: `[Obsolete("Obsolete")]
public sealed class Point : Base, Comparable<Point>
{
    private static readonly int ORIGIN = 0;
    protected volatile int x, y;

    public Point(int x) : this(x, 0)
    {
    }

    Point(int x, int y) : base(x)
    {
        this.x = x;
    }

    public override string ToString()
    {
        return "p";
    }

    public int GetX()
    {
        return x;
    }
}
`,
		},
		{
			name: "generic method with bound",
			java: `class Util {
    public static <T extends Comparable<T>> T max(List<T> items) {
        return null;
    }
}`,
			expected: `class Util
{
    public static T Max<T>(IList<T> items)
        where T : Comparable<T>
    {
        return null;
    }
}
`,
		},
		{
			name: "varargs and abstract methods",
			java: `abstract class Logger {
    public abstract void write(String line);

    public void log(String... parts) {
        write(String.join(" ", parts));
    }
}`,
			expected: `abstract class Logger
{
    public abstract void Write(string line);

    public virtual void Log(params string[] parts)
    {
        Write(String.Join(" ", parts));
    }
}
`,
		},
		{
			name: "static initializer",
			java: `class Config {
    static int size;
    static {
        size = 4;
    }
}`,
			expected: `class Config
{
    static int size;

    static Config()
    {
        size = 4;
    }
}
`,
		},
		{
			name: "interface constants",
			java: `interface Limits {
    int MAX = 10;
}`,
			expected: `interface Limits
{
    // TODO: java interface constants have no direct C# counterpart; check for correctness.
    int MAX = 10;
}
`,
		},
		{
			name: "simple enum",
			java: `public enum Color {
    RED, GREEN
}`,
			expected: `public enum Color
{
    RED,
    GREEN
}
`,
		},
		{
			name: "enum with members",
			java: `enum Planet {
    EARTH(1.0);
    private final double mass;
}`,
			expected: `enum Planet
{
    // EARTH(1.0)
    EARTH

    // --------------------
    // TODO enum body members
    // private final double mass;
    // --------------------
}
`,
			warnings: []string{"Members found in enum Planet will not be ported. Check for correctness."},
		},
		{
			name: "anonymous class",
			java: `class Foo {
    Runnable r = new Runnable() {
        public void run() {
        }
    };
}`,
			expected: `class Foo
{
    Runnable r = new AnonymousRunnable(this);

    private sealed class AnonymousRunnable : Runnable
    {
        public AnonymousRunnable(Foo parent)
        {
            this.parent = parent;
        }

        private readonly Foo parent;

        public void Run()
        {
        }
    }
}
`,
		},
		{
			name: "diamond operator",
			java: `class Foo {
    private List<String> names = new ArrayList<>();
}`,
			expected: `class Foo
{
    private IList<string> names = new();
}
`,
		},
		{
			name: "lambda and method reference",
			java: `class Foo {
    Runnable r = () -> run();
    Function<String, Integer> f = s -> s.length();
    Runnable g = this::run;
}`,
			expected: `class Foo
{
    Runnable r = () => Run();
    Function<string, int> f = s => s.Length;
    Runnable g = this.Run;
}
`,
		},
		{
			name: "annotation type declarations are skipped",
			java: `@interface Marker {
}

class Foo {
}`,
			expected: `class Foo
{
}
`,
			warnings: []string{"Annotation type declarations are not supported and will be skipped."},
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

func TestInterfaceNamesWithI(t *testing.T) {
	opts := bareOptions()
	opts.StartInterfaceNamesWithI = true

	java := `interface Shape {
    double area();
}

class Circle implements Shape {
    public double area() {
        return 1.0;
    }
}`
	expected := `interface IShape
{
    double Area();
}

class Circle : IShape
{
    public virtual double Area()
    {
        return 1.0;
    }
}
`
	assertSource(t, convertForTest(t, java, opts), expected)
}

func TestDiamondBeforeCSharp9(t *testing.T) {
	opts := bareOptions()
	opts.LanguageVersion = "8.0"

	java := `class Foo {
    private List<String> names = new ArrayList<>();
}`
	expected := `class Foo
{
    private IList<string> names = new List();
}
`
	result, warnings := convertWithWarnings(t, java, opts)
	assertSource(t, result, expected)
	expectedWarnings := []string{"Diamond operator requires target typed new (C# 9); type arguments dropped."}
	if !slices.Equal(warnings, expectedWarnings) {
		t.Errorf("Expected warnings %v, got %v", expectedWarnings, warnings)
	}
}

func TestAnnotationsToComment(t *testing.T) {
	opts := bareOptions()
	opts.UseAnnotationsToComment = true

	java := `class A {
    @SuppressWarnings("unchecked")
    @Override
    public void f() {
    }
}`
	expected := `class A
{
    // @SuppressWarnings("unchecked")
    public override void F()
    {
    }
}
`
	assertSource(t, convertForTest(t, java, opts), expected)
}

func TestEnumMembersWithoutComments(t *testing.T) {
	opts := bareOptions()
	opts.UseUnrecognizedCodeToComment = false

	java := `enum Planet {
    EARTH(1.0);
    private final double mass;
}`
	expected := `enum Planet
{
    EARTH
}
`
	result, warnings := convertWithWarnings(t, java, opts)
	assertSource(t, result, expected)
	if len(warnings) != 1 {
		t.Errorf("Expected 1 warning, got %v", warnings)
	}
}

func TestAnonymousNameExhaustion(t *testing.T) {
	ctx := NewMigrationContext(nil, bareOptions())
	for i := 0; i < maxAnonymousTypes; i++ {
		name := nextAnonymousName(ctx, nil, "Runnable")
		expected := "AnonymousRunnable"
		if i > 0 {
			expected += strconv.Itoa(i)
		}
		if name != expected {
			t.Fatalf("Expected %s, got %s", expected, name)
		}
	}

	defer func() {
		r := recover()
		err, ok := r.(*MigrationError)
		if !ok {
			t.Fatalf("Expected a *MigrationError panic, got %v", r)
		}
		if err.Message != "Too many anonymous types" {
			t.Errorf("Unexpected message: %s", err.Message)
		}
	}()
	nextAnonymousName(ctx, nil, "Runnable")
}
