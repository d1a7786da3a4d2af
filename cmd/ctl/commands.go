package ctl

import (
	"fmt"
	"github.com/h4z31/bouyomi/cmd/util"
	"github.com/h4z31/bouyomi/rpc/common"
	"github.com/spf13/cobra"
	"strings"
)

var (
	sayCmd = &cobra.Command{
		Use:   "say [message...]",
		Short: "Queues a message to be read aloud",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			message := strings.Join(args, " ")

			config, err := talkConfig(cmd)
			if err != nil {
				return err
			}

			if err := bouyomi.SpeakWithConfig(message, config); err != nil {
				return err
			}
			fmt.Println("queued successfully")
			return nil
		},
	}
	pauseCmd = &cobra.Command{
		Use:   "pause",
		Short: "Pauses playback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bouyomi.Pause(); err != nil {
				return err
			}
			fmt.Println("paused successfully")
			return nil
		},
	}
	resumeCmd = &cobra.Command{
		Use:   "resume",
		Short: "Resumes playback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bouyomi.Resume(); err != nil {
				return err
			}
			fmt.Println("resumed successfully")
			return nil
		},
	}
	skipCmd = &cobra.Command{
		Use:   "skip",
		Short: "Skips the message currently read aloud",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bouyomi.Skip(); err != nil {
				return err
			}
			fmt.Println("skipped successfully")
			return nil
		},
	}
	clearCmd = &cobra.Command{
		Use:   "clear",
		Short: "Drops all queued messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := bouyomi.Clear(); err != nil {
				return err
			}
			fmt.Println("cleared successfully")
			return nil
		},
	}
	statusCmd = &cobra.Command{
		Use:   "status",
		Short: "Prints the playback state and the number of queued messages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			paused, err := bouyomi.IsPaused()
			if err != nil {
				return err
			}
			playing, err := bouyomi.IsPlaying()
			if err != nil {
				return err
			}
			tasks, err := bouyomi.RemainingTasks()
			if err != nil {
				return err
			}
			fmt.Printf("paused=%v playing=%v tasks=%d\n", paused, playing, tasks)
			return nil
		},
	}
)

func init() {
	defaults := common.DefaultTalkConfig()

	key := "voice"
	sayCmd.Flags().Int16(key, defaults.Voice, util.WrapString("Voice to use (0 uses the application setting, defaults to voice 1)"))
	key = "volume"
	sayCmd.Flags().Int16(key, defaults.Volume, util.WrapString("Volume of the voice (-1 uses the application setting)"))
	key = "speed"
	sayCmd.Flags().Int16(key, defaults.Speed, util.WrapString("Speed of the voice (-1 uses the application setting)"))
	key = "tone"
	sayCmd.Flags().Int16(key, defaults.Tone, util.WrapString("Tone of the voice (-1 uses the application setting)"))
	key = "code"
	sayCmd.Flags().Uint8(key, defaults.Code, util.WrapString("Text encoding byte sent with the message, the text itself is always UTF-8"))
}

// talkConfig reads the voice parameters of the say command
func talkConfig(cmd *cobra.Command) (common.TalkConfig, error) {
	var config common.TalkConfig
	var err error

	flags := cmd.Flags()
	if config.Voice, err = flags.GetInt16("voice"); err != nil {
		return config, err
	}
	if config.Volume, err = flags.GetInt16("volume"); err != nil {
		return config, err
	}
	if config.Speed, err = flags.GetInt16("speed"); err != nil {
		return config, err
	}
	if config.Tone, err = flags.GetInt16("tone"); err != nil {
		return config, err
	}
	if config.Code, err = flags.GetUint8("code"); err != nil {
		return config, err
	}
	return config, nil
}
