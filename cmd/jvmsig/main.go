// jvmsig - JVM descriptor codec CLI tool
//
// Usage:
//
//	jvmsig type <descriptor>      Decode a type descriptor (e.g. "[I")
//	jvmsig method <descriptor>    Decode a method id (e.g. "run:(IC)Z")
//	jvmsig field <descriptor>     Decode a field id (e.g. "count:I")
//	jvmsig absolute <descriptor>  Decode a class-qualified method id
//	jvmsig values <list>          Decode a comma-separated value list
//	jvmsig version                Print version info
//
// If no descriptor is given, reads one descriptor per line from stdin.
// Every command prints the decoded structure followed by the canonical
// re-encoding.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/jpamb/jvm/jvm"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]

	var handler func(string) error
	switch cmd {
	case "type":
		handler = cmdType
	case "method":
		handler = cmdMethod
	case "field":
		handler = cmdField
	case "absolute":
		handler = cmdAbsolute
	case "values":
		handler = cmdValues
	case "version":
		fmt.Printf("jvmsig %s\n", version)
		return
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "jvmsig: unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if len(os.Args) > 2 {
		if err := handler(strings.Join(os.Args[2:], " ")); err != nil {
			fatal("%v", err)
		}
		return
	}

	// No argument: one input per stdin line.
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := handler(line); err != nil {
			fatal("%v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		fatal("read stdin: %v", err)
	}
}

func cmdType(input string) error {
	t, rest, err := jvm.DecodeType(input)
	if err != nil {
		return err
	}
	if rest != "" {
		return fmt.Errorf("trailing %q after type %s", rest, t)
	}
	fmt.Printf("%s\t%s\n", describeType(t), t.Encode())
	return nil
}

func cmdMethod(input string) error {
	m, err := jvm.DecodeMethodID(input)
	if err != nil {
		return err
	}
	printMethod(m)
	return nil
}

func cmdField(input string) error {
	f, err := jvm.DecodeFieldID(input)
	if err != nil {
		return err
	}
	fmt.Printf("field %s: %s\t%s\n", f.Name, describeType(f.Type), f.Encode())
	return nil
}

func cmdAbsolute(input string) error {
	a, err := jvm.DecodeAbsolute(input, jvm.DecodeMethodID)
	if err != nil {
		return err
	}
	fmt.Printf("class %s\n", a.ClassName.Dotted())
	printMethod(a.Extension)
	return nil
}

func cmdValues(input string) error {
	values, err := jvm.DecodeValues(input)
	if err != nil {
		return err
	}
	for i, v := range values {
		enc, err := v.Encode()
		if err != nil {
			return err
		}
		fmt.Printf("arg %d: %s\t%s\n", i, describeType(v.Type()), enc)
	}
	canonical, err := jvm.EncodeValues(values)
	if err != nil {
		return err
	}
	fmt.Printf("canonical: %s\n", canonical)
	return nil
}

func printMethod(m jvm.MethodID) {
	params := make([]string, m.Params.Len())
	for i := range params {
		params[i] = describeType(m.Params.At(i))
	}
	ret := "void"
	if m.Return != nil {
		ret = describeType(m.Return)
	}
	fmt.Printf("method %s(%s) -> %s\t%s\n", m.Name, strings.Join(params, ", "), ret, m.Encode())
}

// describeType renders a type as words: "[[I" becomes "array of array of int".
func describeType(t *jvm.Type) string {
	switch t.Kind() {
	case jvm.KindArray:
		return "array of " + describeType(t.Elem())
	case jvm.KindObject:
		return t.Class().Dotted()
	default:
		return t.Kind().String()
	}
}

func printUsage() {
	fmt.Fprint(os.Stderr, `jvmsig - JVM descriptor codec tool (v`+version+`)

Usage:
  jvmsig type <descriptor>      Decode a type descriptor (e.g. "[I")
  jvmsig method <descriptor>    Decode a method id (e.g. "run:(IC)Z")
  jvmsig field <descriptor>     Decode a field id (e.g. "count:I")
  jvmsig absolute <descriptor>  Decode a class-qualified method id
  jvmsig values <list>          Decode a comma-separated value list
  jvmsig version                Print version info

If no descriptor is given, reads one per line from stdin.
`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "jvmsig: "+format+"\n", args...)
	os.Exit(1)
}
