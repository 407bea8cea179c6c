/*
Package stagedash is a one-shot terminal dashboard for a continuous-delivery pipeline.

It fetches a pipeline's stages and the latest execution status of each one, paints a
single static frame where every stage is a bordered panel coloured by its status, and
returns. There is no refresh loop and no input handling.

# Concept

The dashboard follows a Hexagonal Architecture. The pipeline service is reached through
a ports.PipelineSource (HTTP API, YAML/JSON snapshot, PipeGo run history, optionally
cached in Redis) and the screen through a ports.Surface. The layout and colour rules in
pkg/layout and pkg/render are pure and never touch either port.

# Usage

	source, err := memory.NewSource(domain.Pipeline{
		Name: "web",
		Stages: []domain.Stage{
			domain.NewStage("Build", "Succeeded"),
			domain.NewStage("Deploy", "InProgress"),
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	dash := stagedash.New(source, stagedash.WithMatch("web"))
	canvas := tui.NewCanvas(120, 40)
	if err := dash.Render(context.Background(), canvas); err != nil {
		log.Fatal(err)
	}

# Pipeline Selection

With no match the first listed pipeline is shown. An exact name wins over a partial
match, partial matches are resolved in listing order, and a miss reports the closest
name by edit distance.
*/
package stagedash
