// Command mahjong is a CLI front end for the hand-evaluation engine.
// Bootstrapping follows the teacher's user/main.go: a cobra root command
// loads a config file into a Config value, initializes the log
// package from it, then runs the actual work — narrowed here to one
// subcommand that evaluates a single hand instead of starting a network
// service, since this module has no server loop of its own.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"mahjong/config"
	"mahjong/engine"
	"mahjong/hand"
	"mahjong/log"
	"mahjong/persist"
	"mahjong/tile"
	"mahjong/yaku"
)

var (
	configFile string
	selfPicked bool
	riichi     bool
	roundWind  string
	seatWind   string
)

var rootCmd = &cobra.Command{
	Use:   "mahjong [hand notation] [win tile]",
	Short: "Evaluate a Riichi Mahjong hand",
	Long:  "Parses a hand in the spec's tile notation, scores it, and prints the matched yaku, fu, and points.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Default()
		if configFile != "" {
			loaded, err := config.Load(configFile)
			if err != nil {
				log.Fatal("loading config file: %v", err)
			}
			cfg = loaded
		}
		log.Init("mahjong", cfg.Log.Level)

		notation := strings.Join(args, " ")
		h := hand.Parse(notation)
		winTile := lastTileOf(h)

		round, seat := windOf(roundWind, cfg.Table.RoundWind), windOf(seatWind, cfg.Table.SeatWind)
		result := engine.Evaluate(engine.Request{
			Hand:    h,
			WinTile: winTile,
			Situation: yaku.Situation{
				Riichi:     riichi,
				SelfPicked: selfPicked,
				RoundWind:  round,
				SeatWind:   seat,
			},
		})

		printResult(result)

		if cfg.Mongo.Url != "" {
			persistResult(cfg, notation, result)
		}
	},
}

func lastTileOf(h hand.Hand) tile.Type {
	if h.Drawn != nil {
		return *h.Drawn
	}
	if len(h.Concealed) > 0 {
		return h.Concealed[len(h.Concealed)-1]
	}
	return tile.M1
}

func windOf(flag, fallback string) tile.Wind {
	s := flag
	if s == "" {
		s = fallback
	}
	switch strings.ToLower(s) {
	case "south":
		return tile.South
	case "west":
		return tile.West
	case "north":
		return tile.North
	default:
		return tile.East
	}
}

func printResult(result engine.Result) {
	if result.Score == nil {
		fmt.Printf("shanten %d (not a win)\n", result.Analysis.Shanten)
		return
	}
	fmt.Printf("han %d, fu %d, rank %s\n", result.Score.Han, result.Score.Fu, result.Score.Rank)
	for _, y := range result.Yaku {
		fmt.Printf("  %-24s %d han\n", y.Name, y.Han)
	}
	p := result.Score.Payments
	fmt.Printf("dealer ron %d, non-dealer ron %d\n", p.DealerRon, p.NonDealerRon)
}

func persistResult(cfg config.Config, notation string, result engine.Result) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	repo, err := persist.NewMongoRepository(ctx, cfg.Mongo.Url, cfg.Mongo.Db)
	if err != nil {
		log.Error("connecting to mongo: %v", err)
		return
	}
	store := persist.NewStore(repo)
	rec := persist.EvaluationRecord{RequestID: uuid.New().String(), HandText: notation}
	if result.Score != nil {
		rec.Han = result.Score.Han
		rec.Fu = result.Score.Fu
		rec.Rank = result.Score.Rank.String()
	}
	for _, y := range result.Yaku {
		rec.Yaku = append(rec.Yaku, y.Name)
	}
	store.Record(rec)
	store.Close()
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "configFile", "", "optional config file (yaml/toml/json)")
	rootCmd.Flags().BoolVar(&selfPicked, "tsumo", false, "the hand was won by self-draw")
	rootCmd.Flags().BoolVar(&riichi, "riichi", false, "riichi was declared")
	rootCmd.Flags().StringVar(&roundWind, "round-wind", "", "round wind: east/south/west/north")
	rootCmd.Flags().StringVar(&seatWind, "seat-wind", "", "seat wind: east/south/west/north")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error("error: %v", err)
		os.Exit(1)
	}
}
