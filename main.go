package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"git.uakci.pl/uakci/pinyin-dec/pinyin"
	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/spf13/pflag"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const USAGE = `Usage: pinyin-dec [options] [string ...]

Decorate Pinyin text with its proper diacritics.

Options:
  -h, --help       print this help message and exit
  -v, --verbose    include information useful for debugging
      --html       read HTML from standard input and decorate its Markdown
  -b, --bot        run as a Discord bot (TOKEN, PINYIN_PREFIX from env)

`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.SetOutput(stderr)
	log.SetPrefix("pinyin-dec: ")
	log.SetFlags(0)

	flags := pflag.NewFlagSet("pinyin-dec", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	help := flags.BoolP("help", "h", false, "")
	verbose := flags.BoolP("verbose", "v", false, "")
	html := flags.Bool("html", false, "")
	bot := flags.BoolP("bot", "b", false, "")
	if err := flags.Parse(args); err != nil {
		log.Print(err)
		return 1
	}
	if *help {
		fmt.Fprint(stdout, USAGE)
		return 0
	}
	var observe func(pinyin.Span, string, string)
	if *verbose {
		log.SetFlags(log.Lshortfile)
		observe = func(span pinyin.Span, from, to string) {
			log.Printf("%d-%d: %s -> %s", span.Start, span.End, from, to)
		}
	}
	if !*bot {
		defer interrupted(stdout)()
	}

	var (
		err  error
		mode string
	)
	switch {
	case *bot:
		mode, err = "bot", serve()
	case *html:
		mode, err = "html", decorateHTML(stdin, stdout, observe)
	case flags.NArg() == 0:
		mode, err = "stdin", decorateLines(stdin, stdout, observe)
	default:
		text := norm.NFC.String(strings.Join(flags.Args(), " "))
		mode = "args"
		_, err = fmt.Fprintln(stdout, pinyin.Rewrite(text, observe))
	}
	if err != nil {
		if *verbose {
			log.Printf("%s mode, args %q: %+v (%T)", mode, flags.Args(), err, err)
		} else {
			log.Print(err)
		}
		return 1
	}
	return 0
}

// interrupted ends the line and exits on SIGINT until the returned func is
// called.
func interrupted(w io.Writer) func() {
	sc := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(sc, os.Interrupt)
	go func() {
		select {
		case <-sc:
			fmt.Fprintln(w)
			os.Exit(1)
		case <-done:
		}
	}()
	return func() {
		signal.Stop(sc)
		close(done)
	}
}

// input decodes UTF-8, discarding a leading byte order mark.
func input(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

func decorateLines(r io.Reader, w io.Writer, observe func(pinyin.Span, string, string)) error {
	in := bufio.NewReader(input(r))
	for {
		line, err := in.ReadString('\n')
		if line != "" {
			if _, werr := io.WriteString(w, pinyin.Rewrite(line, observe)); werr != nil {
				return werr
			}
		}
		switch {
		case err == io.EOF:
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}
	}
}

func decorateHTML(r io.Reader, w io.Writer, observe func(pinyin.Span, string, string)) error {
	raw, err := io.ReadAll(input(r))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	text, err := md.NewConverter("", true, nil).ConvertString(string(raw))
	if err != nil {
		return fmt.Errorf("convert html: %w", err)
	}
	_, err = fmt.Fprintln(w, pinyin.Rewrite(norm.NFC.String(text), observe))
	return err
}
