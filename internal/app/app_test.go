package app_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"

	"github.com/dnflock/dnflock/internal/adapters/config"
	"github.com/dnflock/dnflock/internal/app"
	"github.com/dnflock/dnflock/internal/core/domain"
	"github.com/dnflock/dnflock/internal/core/ports/mocks"
)

type testApp struct {
	app       *app.App
	out       *bytes.Buffer
	query     *mocks.MockQueryAdapter
	installer *mocks.MockInstaller
	lists     *mocks.MockListStore
	locks     *mocks.MockLockStore
	archiver  *mocks.MockArchiver
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	ctrl := gomock.NewController(t)
	ta := &testApp{
		out:       &bytes.Buffer{},
		query:     mocks.NewMockQueryAdapter(ctrl),
		installer: mocks.NewMockInstaller(ctrl),
		lists:     mocks.NewMockListStore(ctrl),
		locks:     mocks.NewMockLockStore(ctrl),
		archiver:  mocks.NewMockArchiver(ctrl),
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	cfg := &config.Config{
		StateDir:  t.TempDir(),
		Parallel:  2,
		ChunkSize: 2,
		Progress:  false,
	}
	ta.app = app.New(cfg, logger, ta.query, ta.installer, ta.lists, ta.locks, ta.archiver)
	ta.app.SetOutput(ta.out)
	return ta
}

func TestApp_Init(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	ta.query.EXPECT().ListInstalled(ctx).Return(domain.NewPackageSet("bash", "coreutils", "git"), nil)
	ta.query.EXPECT().ListGroupPackages(ctx, "core").
		Return(domain.NewPackageSet("bash", "coreutils", "shim"), nil)
	ta.query.EXPECT().ListGroupPackages(ctx, "minimal-environment").
		Return(nil, zerr.New("no such group"))

	// Group members not actually installed are dropped.
	ta.lists.EXPECT().WriteDefaults(domain.NewPackageSet("bash", "coreutils")).Return(nil)
	ta.lists.EXPECT().Root().Return("/home/u/.dnflock")

	require.NoError(t, ta.app.Init(ctx))
	assert.Contains(t, ta.out.String(), "Captured 2 default packages")
}

func TestApp_InitWithoutGroupMetadata(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	installed := domain.NewPackageSet("bash", "git")
	ta.query.EXPECT().ListInstalled(ctx).Return(installed, nil)
	ta.query.EXPECT().ListGroupPackages(ctx, gomock.Any()).
		Return(nil, zerr.New("group metadata unavailable")).Times(2)

	ta.lists.EXPECT().WriteDefaults(installed).Return(nil)
	ta.lists.EXPECT().Root().Return("/home/u/.dnflock")

	require.NoError(t, ta.app.Init(ctx))
}

func TestApp_Analyze(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	ta.lists.EXPECT().ReadDefaults().Return(domain.NewPackageSet("bash", "coreutils"), nil)
	ta.query.EXPECT().ListInstalled(gomock.Any()).
		Return(domain.NewPackageSet("bash", "coreutils", "git", "pcre2", "vim"), nil)
	ta.query.EXPECT().ListUserInstalled(gomock.Any()).
		Return(domain.NewPackageSet("git", "vim"), nil)

	ta.lists.EXPECT().WriteClassification(gomock.Any()).DoAndReturn(func(c domain.Classification) error {
		assert.Equal(t, domain.NewPackageSet("git", "vim"), c.Manual)
		assert.Equal(t, domain.NewPackageSet("pcre2"), c.Auto)
		return nil
	})

	require.NoError(t, ta.app.Analyze(ctx))
	assert.Contains(t, ta.out.String(), "2 manual, 1 auto")
}

func TestApp_AnalyzeRequiresInit(t *testing.T) {
	ta := newTestApp(t)

	ta.lists.EXPECT().ReadDefaults().Return(nil, domain.ErrDefaultsNotCaptured)

	err := ta.app.Analyze(context.Background())
	require.ErrorIs(t, err, domain.ErrDefaultsNotCaptured)
}

func TestApp_Lock(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	ta.lists.EXPECT().ReadManual().Return(domain.NewPackageSet("git"), nil)
	ta.lists.EXPECT().ReadAuto().Return(domain.NewPackageSet("pcre2"), nil)

	ta.query.EXPECT().Metadata(gomock.Any(), "git").Return(domain.PackageRecord{
		Name: "git", Version: "2.41.0", Release: "1.fc39", Arch: "x86_64",
	}, nil)
	ta.query.EXPECT().Repository(gomock.Any(), "git").Return("fedora", nil)
	ta.query.EXPECT().Metadata(gomock.Any(), "pcre2").Return(domain.PackageRecord{
		Name: "pcre2", Version: "10.42", Release: "1.fc39.2", Arch: "x86_64",
	}, nil)
	ta.query.EXPECT().Repository(gomock.Any(), "pcre2").Return("fedora", nil)
	ta.query.EXPECT().ListRepositories(ctx).Return([]domain.Repository{
		{Name: "fedora", Enabled: true},
	}, nil)

	ta.locks.EXPECT().Write(gomock.Any()).DoAndReturn(func(artifact *domain.LockArtifact) error {
		require.Len(t, artifact.Manual, 1)
		require.Len(t, artifact.Auto, 1)
		assert.Equal(t, "git", artifact.Manual[0].Name)
		assert.Equal(t, "fedora", artifact.Manual[0].Repository)
		assert.Equal(t, artifact.ManualNames().Checksum(), artifact.Checksums.ManualList)
		return nil
	})
	ta.locks.EXPECT().Path().Return("/home/u/.dnflock/packages.lock")

	require.NoError(t, ta.app.Lock(ctx))
	assert.Contains(t, ta.out.String(), "Locked 1 manual and 1 auto packages")
}

func lockedArtifact(records ...domain.PackageRecord) *domain.LockArtifact {
	a := &domain.LockArtifact{System: "fedora-39", Manual: records}
	a.Checksums = domain.Checksums{
		ManualList: a.ManualNames().Checksum(),
		AutoList:   a.AutoNames().Checksum(),
	}
	return a
}

func expectClassify(ta *testApp, defaults, installed, user domain.PackageSet) {
	ta.lists.EXPECT().ReadDefaults().Return(defaults, nil)
	ta.query.EXPECT().ListInstalled(gomock.Any()).Return(installed, nil)
	ta.query.EXPECT().ListUserInstalled(gomock.Any()).Return(user, nil)
}

func TestApp_VerifyDetectsDrift(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	ta.locks.EXPECT().Read().Return(lockedArtifact(domain.PackageRecord{
		Name: "x", Version: "1.0", Release: "1", Arch: "x86_64",
	}), nil)
	expectClassify(ta,
		domain.NewPackageSet("bash"),
		domain.NewPackageSet("bash", "x"),
		domain.NewPackageSet("x"))
	ta.query.EXPECT().Metadata(gomock.Any(), "x").Return(domain.PackageRecord{
		Name: "x", Version: "2.0", Release: "1", Arch: "x86_64",
	}, nil)

	err := ta.app.Verify(ctx)
	require.ErrorIs(t, err, domain.ErrDriftDetected)
	assert.Contains(t, ta.out.String(), "x: locked=1.0-1, current=2.0-1")
}

func TestApp_VerifyClean(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	git := domain.PackageRecord{Name: "git", Version: "2.41.0", Release: "1.fc39", Arch: "x86_64"}
	ta.locks.EXPECT().Read().Return(lockedArtifact(git), nil)
	expectClassify(ta,
		domain.NewPackageSet("bash"),
		domain.NewPackageSet("bash", "git"),
		domain.NewPackageSet("git"))
	ta.query.EXPECT().Metadata(gomock.Any(), "git").Return(git, nil)

	require.NoError(t, ta.app.Verify(ctx))
	assert.Contains(t, ta.out.String(), "System matches the lock file.")
}

func TestApp_VerifyWithoutLock(t *testing.T) {
	ta := newTestApp(t)

	ta.locks.EXPECT().Read().Return(nil, domain.ErrLockNotFound)

	err := ta.app.Verify(context.Background())
	require.ErrorIs(t, err, domain.ErrLockNotFound)
}

func TestApp_RestoreDryRun(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	ta.locks.EXPECT().Read().Return(lockedArtifact(
		domain.PackageRecord{Name: "git", Version: "2.41.0", Release: "1.fc39", Arch: "x86_64"},
		domain.PackageRecord{Name: "y", Version: "1.0", Release: "1", Arch: "noarch"},
	), nil)
	ta.query.EXPECT().ListInstalled(ctx).Return(domain.NewPackageSet("git"), nil)

	require.NoError(t, ta.app.Restore(ctx, true))
	out := ta.out.String()
	assert.Contains(t, out, "Would install 1 packages")
	assert.Contains(t, out, "y-1.0-1")
}

func TestApp_RestoreInstallsMissing(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	ta.locks.EXPECT().Read().Return(lockedArtifact(
		domain.PackageRecord{Name: "y", Version: "1.0", Release: "1", Arch: "noarch"},
	), nil)
	ta.query.EXPECT().ListInstalled(ctx).Return(domain.NewPackageSet("bash"), nil)
	ta.installer.EXPECT().Install(ctx, []string{"y-1.0-1"}).Return(nil)

	require.NoError(t, ta.app.Restore(ctx, false))
	assert.Contains(t, ta.out.String(), "Installed 1 packages from lock file.")
}

func TestApp_RestoreNothingMissing(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	ta.locks.EXPECT().Read().Return(lockedArtifact(
		domain.PackageRecord{Name: "git", Version: "2.41.0", Release: "1.fc39", Arch: "x86_64"},
	), nil)
	ta.query.EXPECT().ListInstalled(ctx).Return(domain.NewPackageSet("git"), nil)

	require.NoError(t, ta.app.Restore(ctx, false))
	assert.Contains(t, ta.out.String(), "All locked manual packages are installed.")
}

func TestApp_Stats(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	expectClassify(ta,
		domain.NewPackageSet("bash"),
		domain.NewPackageSet("bash", "git", "pcre2"),
		domain.NewPackageSet("git"))
	ta.query.EXPECT().Metadata(gomock.Any(), "git").Return(domain.PackageRecord{
		Name: "git", Version: "2.41.0", Release: "1.fc39", Arch: "x86_64", SizeBytes: 2048,
	}, nil)
	ta.query.EXPECT().Repository(gomock.Any(), "git").Return("fedora", nil)

	require.NoError(t, ta.app.Stats(ctx))
	out := ta.out.String()
	assert.Contains(t, out, "Installed packages: 3")
	assert.Contains(t, out, "manual:  1")
	assert.Contains(t, out, "Manual install size: 2.0 KiB")
}

func TestApp_Tree(t *testing.T) {
	ta := newTestApp(t)

	ta.lists.EXPECT().ReadManual().Return(domain.NewPackageSet("gcc", "htop"), nil)
	ta.lists.EXPECT().ReadAuto().Return(domain.NewPackageSet("pcre2"), nil)

	require.NoError(t, ta.app.Tree(context.Background()))
	out := ta.out.String()
	assert.Contains(t, out, "Manual packages (2)")
	assert.Contains(t, out, "auto dependencies: 1")
}

func TestApp_ExportImport(t *testing.T) {
	ta := newTestApp(t)
	ctx := context.Background()

	ta.lists.EXPECT().Root().Return("/home/u/.dnflock").Times(2)
	ta.archiver.EXPECT().Pack("/home/u/.dnflock", "state.tar.gz").Return(nil)
	ta.archiver.EXPECT().Unpack("state.tar.gz", "/home/u/.dnflock").Return(nil)

	require.NoError(t, ta.app.Export(ctx, "state.tar.gz"))
	require.NoError(t, ta.app.Import(ctx, "state.tar.gz"))
	assert.Contains(t, ta.out.String(), "Exported state to state.tar.gz")
	assert.Contains(t, ta.out.String(), "Imported state from state.tar.gz")
}
