package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"

	"git.uakci.pl/uakci/pinyin-dec/pinyin"
	"github.com/bwmarrin/discordgo"
	"golang.org/x/text/unicode/norm"
)

const (
	HELP = "\u2003**commands:**" +
		"\n`%[1]s` — decorate numbered Pinyin (`%[1]s ni3 hao3` → nǐ hǎo)" +
		"\n`%%help` — this message"
	UNKNOWN = "unknown command — see `%help` for help"
)

var (
	header     = regexp.MustCompile(`^\*\*.*?\*\*: `)
	whitespace = regexp.MustCompile(`[ \n]+`)
)

func Respond(dg *discordgo.Session, ms *discordgo.MessageCreate, prefix string) {
	var self string
	if dg.State != nil && dg.State.User != nil {
		self = dg.State.User.ID
	}
	if ignored(ms, self) {
		return
	}
	log.Printf("\n* %s", strings.Join(strings.Split(ms.Content, "\n"), "\n  "))
	respond(ms.Content, prefix, func(reply string) {
		if _, err := dg.ChannelMessageSend(ms.ChannelID, reply); err != nil {
			log.Print(err)
		}
	})
}

// ignored reports whether ms comes from a bot, from the session's own user
// self, or from nobody at all.
func ignored(ms *discordgo.MessageCreate, self string) bool {
	if ms.Message == nil || ms.Author == nil || ms.Author.Bot {
		return true
	}
	return self != "" && ms.Author.ID == self
}

func respond(message, prefix string, callback func(string)) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("%v", r)
			callback("internal error, sorry")
		}
	}()
	message = strings.Trim(
		header.ReplaceAllLiteralString(message, ""),
		" \n")
	cmd := whitespace.Split(message, 2)[0]
	rest := strings.Trim(message[len(cmd):], " \n")
	switch cmd {
	case prefix:
		if len(rest) == 0 {
			callback("please supply input")
			return
		}
		callback(pinyin.Format(norm.NFC.String(rest)))
	case "%help":
		callback(fmt.Sprintf(HELP, prefix))
	default:
		if strings.HasPrefix(cmd, "%") {
			callback(UNKNOWN)
		}
	}
}

func serve() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dg, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return fmt.Errorf("bot: %w", err)
	}
	dg.AddHandler(func(s *discordgo.Session, ms *discordgo.MessageCreate) {
		Respond(s, ms, cfg.Prefix)
	})
	if err := dg.Open(); err != nil {
		return fmt.Errorf("bot: open session: %w", err)
	}
	defer dg.Close()
	log.Printf("listening for %q", cfg.Prefix)
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	return nil
}
