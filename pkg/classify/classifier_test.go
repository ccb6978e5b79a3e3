// Test Type: Unit Test
// Description: Tests for payload root detection and plan building

package classify_test

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/ddlcmod/pkg/classify"
	"github.com/arthur-debert/ddlcmod/pkg/testutil"
	"github.com/arthur-debert/ddlcmod/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const target = "/games/ddlc"

func newClassifier(env *testutil.TestEnvironment, log types.LogSink) *classify.Classifier {
	return classify.NewClassifier(env.FS, classify.DefaultRules(), log)
}

func TestClassify_CommonParent(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	extract := filepath.Join(env.Downloads, "MyMod")
	env.WithFileTree(extract, testutil.FileTree{
		"game":      testutil.FileTree{"scripts.rpa": "mod scripts"},
		"renpy":     testutil.FileTree{"common.rpy": "x"},
		"MyMod.exe": "launcher",
	})

	plan, err := newClassifier(env, nil).Classify(extract, target)
	require.NoError(t, err)

	assert.Equal(t, extract, plan.PayloadRoot)
	assert.True(t, plan.HasLauncher)

	dest, kind, ok := plan.Resolve("game/scripts.rpa")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(target, "game", "scripts.rpa"), dest)
	assert.Equal(t, types.KindMergeDirectory, kind)

	dest, kind, ok = plan.Resolve("renpy")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(target, "renpy"), dest)
	assert.Equal(t, types.KindMergeDirectory, kind)

	dest, kind, ok = plan.Resolve("MyMod.exe")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(target, "MyMod.exe"), dest)
	assert.Equal(t, types.KindExecutable, kind)

	// Files come before merged directories, directories in name order
	require.Len(t, plan.Steps, 3)
	assert.Equal(t, "MyMod.exe", plan.Steps[0].Entry.RelPath)
	assert.Equal(t, "game", plan.Steps[1].Entry.RelPath)
	assert.Equal(t, "renpy", plan.Steps[2].Entry.RelPath)
}

func TestClassify_LooseDataFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	extract := filepath.Join(env.Downloads, "MyMod")
	env.WithFileTree(extract, testutil.FileTree{
		"MyMod": testutil.FileTree{
			"scripts.rpa": "mod scripts",
			"images.rpa":  "mod images",
			"README.txt":  "read me",
			"launch.SH":   "#!/bin/sh",
			"characters":  testutil.FileTree{"monika.chr": "chr"},
		},
	})

	plan, err := newClassifier(env, nil).Classify(extract, target)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(extract, "MyMod"), plan.PayloadRoot)
	assert.False(t, plan.HasLauncher)

	dest, kind, ok := plan.Resolve("MyMod/scripts.rpa")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(target, "game", "scripts.rpa"), dest)
	assert.Equal(t, types.KindDataFile, kind)

	dest, kind, ok = plan.Resolve("MyMod/launch.SH")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(target, "launch.SH"), dest)
	assert.Equal(t, types.KindExecutable, kind)

	_, _, ok = plan.Resolve("MyMod/README.txt")
	assert.False(t, ok)

	assert.Equal(t, 2, plan.Count(types.KindDataFile))
	assert.Equal(t, 1, plan.Count(types.KindExecutable))
	assert.Equal(t, 1, plan.Count(types.KindMergeDirectory))

	step := plan.Steps[2]
	assert.Equal(t, "scripts.rpa", step.Entry.Name)
	assert.Equal(t, "MyMod", step.Entry.Parent)
	assert.Equal(t, int64(len("mod scripts")), step.Entry.Size)
	assert.Equal(t, filepath.Join(extract, "MyMod", "scripts.rpa"), step.Source)
}

func TestClassify_WalkOrder(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	extract := filepath.Join(env.Downloads, "Pack")
	env.WithFileTree(extract, testutil.FileTree{
		"DDLC.exe": "exe",
		"game":     testutil.FileTree{"x.rpy": "x"},
		"extras": testutil.FileTree{
			"tool.py":   "print()",
			"Mod.app":   testutil.FileTree{"Contents": testutil.FileTree{"Info.plist": "plist"}},
			"fonts.rpa": "fonts",
			"nested":    testutil.FileTree{"audio.rpa": "audio"},
		},
		"zzz.bat": "@echo off",
	})

	plan, err := newClassifier(env, nil).Classify(extract, target)
	require.NoError(t, err)

	var got []string
	for _, step := range plan.Steps {
		got = append(got, step.Entry.RelPath)
	}
	assert.Equal(t, []string{
		"DDLC.exe",
		"zzz.bat",
		"game",
		"extras/fonts.rpa",
		"extras/tool.py",
		"extras/Mod.app",
		"extras/nested/audio.rpa",
	}, got)

	dest, kind, ok := plan.Resolve("extras/Mod.app/Contents/Info.plist")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(target, "Mod.app", "Contents", "Info.plist"), dest)
	assert.Equal(t, types.KindMergeDirectory, kind)
}

func TestClassify_Deterministic(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	extract := filepath.Join(env.Downloads, "MyMod")
	env.WithFileTree(extract, testutil.FileTree{
		"a": testutil.FileTree{"nothing.txt": "x"},
		"b": testutil.FileTree{
			"lib":       testutil.FileTree{"x": "x"},
			"game":      testutil.FileTree{"y": "y"},
			"Mod.exe":   "exe",
			"fonts.rpa": "f",
		},
		"c": testutil.FileTree{"renpy": testutil.FileTree{"z": "z"}},
	})

	c := newClassifier(env, nil)
	first, err := c.Classify(extract, target)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := c.Classify(extract, target)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, filepath.Join(extract, "b"), first.PayloadRoot)
}

func TestClassify_NoPayloadRoot(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	extract := filepath.Join(env.Downloads, "Wallpaper")
	env.WithFileTree(extract, testutil.FileTree{
		"wallpaper.png": "png",
		"docs":          testutil.FileTree{"readme.md": "hi", "setup.exe": "exe"},
	})
	log := &testutil.LogRecorder{}

	plan, err := newClassifier(env, log).Classify(extract, target)
	require.NoError(t, err)

	assert.True(t, plan.Empty())
	assert.False(t, plan.HasLauncher)
	assert.Empty(t, plan.PayloadRoot)
	assert.True(t, log.Contains("None of the target directories found"))
}

func TestClassify_UnreadableDir(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	_, err := newClassifier(env, nil).Classify(filepath.Join(env.Downloads, "missing"), target)
	assert.Error(t, err)
}

func TestFindPayloadRoot_PreOrder(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	extract := filepath.Join(env.Downloads, "Deep")
	env.WithFileTree(extract, testutil.FileTree{
		"a": testutil.FileTree{
			"deeper": testutil.FileTree{"game": testutil.FileTree{"x": "x"}},
		},
		"b": testutil.FileTree{"renpy": testutil.FileTree{"y": "y"}},
	})

	root, found, err := newClassifier(env, nil).FindPayloadRoot(extract)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, filepath.Join(extract, "a", "deeper"), root)
}

func TestRules(t *testing.T) {
	rules := classify.DefaultRules()

	tests := []struct {
		name  string
		isDir bool
		want  types.Kind
	}{
		{"DDLC.EXE", false, types.KindExecutable},
		{"run.Bat", false, types.KindExecutable},
		{"setup.py", false, types.KindExecutable},
		{"scripts.rpa", false, types.KindDataFile},
		{"Scripts.rpa", false, types.KindIgnore},
		{"other.rpa", false, types.KindIgnore},
		{"game", true, types.KindMergeDirectory},
		{"Game", true, types.KindIgnore},
		{"DDLC.app", true, types.KindMergeDirectory},
		{"characters", true, types.KindMergeDirectory},
		{"docs", true, types.KindIgnore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.isDir {
				assert.Equal(t, tt.want, rules.DirKind(tt.name))
			} else {
				assert.Equal(t, tt.want, rules.FileKind(tt.name))
			}
		})
	}

	assert.True(t, rules.IsLauncher("MyMod.EXE"))
	assert.False(t, rules.IsLauncher("run.sh"))
}
