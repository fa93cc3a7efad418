package githubapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/ghloc/pkg/domain/model"
	"github.com/secmon-lab/ghloc/pkg/domain/types"
	"github.com/secmon-lab/ghloc/pkg/infra/githubapi"
	"github.com/secmon-lab/ghloc/pkg/utils/testutil"
)

const testSHA = "0123456789abcdef0123456789abcdef01234567"

var testRepo = &model.Repository{
	Owner:         "alice",
	Name:          "r1",
	FullName:      "alice/r1",
	URL:           "https://api.github.com/repos/alice/r1",
	DefaultBranch: "main",
}

func newTestClient(t *testing.T, mux *http.ServeMux) *githubapi.Client {
	t.Helper()
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client, err := githubapi.NewWithToken(context.Background(), "test-token", githubapi.WithBaseURL(server.URL))
	gt.NoError(t, err)
	return client
}

func TestNewWithToken(t *testing.T) {
	t.Run("empty token fails", func(t *testing.T) {
		client, err := githubapi.NewWithToken(context.Background(), "")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("token is sent as bearer", func(t *testing.T) {
		var authHeader string
		mux := http.NewServeMux()
		mux.HandleFunc("/rate_limit", func(w http.ResponseWriter, r *http.Request) {
			authHeader = r.Header.Get("Authorization")
			fmt.Fprint(w, `{"resources":{"core":{"limit":5000,"remaining":4999,"reset":1700000000}}}`)
		})

		client := newTestClient(t, mux)
		_, err := client.GetRateLimit(context.Background())
		gt.NoError(t, err)
		gt.V(t, authHeader).Equal("Bearer test-token")
	})
}

func TestNewWithApp(t *testing.T) {
	t.Run("zero app ID fails", func(t *testing.T) {
		client, err := githubapi.NewWithApp(0, 1, "key")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("zero install ID fails", func(t *testing.T) {
		client, err := githubapi.NewWithApp(1, 0, "key")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("empty private key fails", func(t *testing.T) {
		client, err := githubapi.NewWithApp(1, 1, "")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("invalid private key fails", func(t *testing.T) {
		client, err := githubapi.NewWithApp(1, 1, "invalid-key")
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})
}

func TestListRepositories(t *testing.T) {
	mux := http.NewServeMux()
	var serverURL string
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<%s/user/repos?page=2&per_page=100>; rel="next"`, serverURL))
			fmt.Fprint(w, `[{"name":"r1","full_name":"alice/r1","url":"https://api.github.com/repos/alice/r1","default_branch":"main","owner":{"login":"alice"}}]`)
		case "2":
			fmt.Fprint(w, `[{"name":"r2","full_name":"bob/r2","url":"https://api.github.com/repos/bob/r2","default_branch":"master","owner":{"login":"bob"}}]`)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	serverURL = server.URL

	client, err := githubapi.NewWithToken(context.Background(), "test-token", githubapi.WithBaseURL(server.URL))
	gt.NoError(t, err)

	repos, err := client.ListRepositories(context.Background())
	gt.NoError(t, err)
	gt.V(t, len(repos)).Equal(2)
	gt.V(t, repos[0].Owner).Equal("alice")
	gt.V(t, repos[0].Name).Equal("r1")
	gt.V(t, repos[0].URL).Equal("https://api.github.com/repos/alice/r1")
	gt.V(t, repos[0].DefaultBranch).Equal("main")
	gt.V(t, repos[1].FullName).Equal("bob/r2")
	gt.V(t, repos[1].DefaultBranch).Equal("master")
}

func TestListRepositoriesByInstallation(t *testing.T) {
	var serverURL string
	var userReposCalled bool
	mux := http.NewServeMux()
	mux.HandleFunc("/user/repos", func(w http.ResponseWriter, r *http.Request) {
		userReposCalled = true
		w.WriteHeader(http.StatusForbidden)
	})
	mux.HandleFunc("/installation/repositories", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("page") {
		case "", "1":
			w.Header().Set("Link", fmt.Sprintf(`<%s/installation/repositories?page=2&per_page=100>; rel="next"`, serverURL))
			fmt.Fprint(w, `{"total_count":3,"repositories":[`+
				`{"name":"r1","full_name":"alice/r1","url":"https://api.github.com/repos/alice/r1","default_branch":"main","owner":{"login":"alice"}},`+
				`{"name":"r3","full_name":"alice/r3","url":"https://api.github.com/repos/alice/r3","default_branch":"develop","owner":{"login":"alice"}}]}`)
		case "2":
			fmt.Fprint(w, `{"total_count":3,"repositories":[`+
				`{"name":"r2","full_name":"bob/r2","url":"https://api.github.com/repos/bob/r2","default_branch":"master","owner":{"login":"bob"}}]}`)
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	serverURL = server.URL

	client := gt.R1(githubapi.NewWithHTTPClientForTest(server.Client(), true, githubapi.WithBaseURL(server.URL))).NoError(t)

	repos := gt.R1(client.ListRepositories(context.Background())).NoError(t)
	gt.False(t, userReposCalled)
	gt.V(t, len(repos)).Equal(3)
	gt.V(t, repos[0]).Equal(&model.Repository{
		Owner:         "alice",
		Name:          "r1",
		FullName:      "alice/r1",
		URL:           "https://api.github.com/repos/alice/r1",
		DefaultBranch: "main",
	})
	gt.V(t, repos[1].FullName).Equal("alice/r3")
	gt.V(t, repos[1].DefaultBranch).Equal("develop")
	gt.V(t, repos[2].FullName).Equal("bob/r2")
	gt.V(t, repos[2].Owner).Equal("bob")
	gt.V(t, repos[2].DefaultBranch).Equal("master")
}

func TestGetRateLimit(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rate_limit", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"resources":{"core":{"limit":5000,"remaining":0,"reset":1700000000}}}`)
	})

	client := newTestClient(t, mux)
	limit, err := client.GetRateLimit(context.Background())
	gt.NoError(t, err)
	gt.V(t, limit.Limit).Equal(5000)
	gt.V(t, limit.Remaining).Equal(0)
	gt.True(t, limit.Exhausted())
	gt.V(t, limit.Reset.Unix()).Equal(int64(1700000000))
}

func TestGetRateLimitServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/rate_limit", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message":"boom"}`)
	})

	client := newTestClient(t, mux)
	_, err := client.GetRateLimit(context.Background())
	gt.Error(t, err)
}

func TestListRefs(t *testing.T) {
	t.Run("refs are converted in order", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/r1/git/matching-refs/", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `[
				{"ref":"refs/heads/develop","url":"https://api.github.com/repos/alice/r1/git/refs/heads/develop","object":{"sha":"1111111111111111111111111111111111111111","type":"commit"}},
				{"ref":"refs/heads/main","url":"https://api.github.com/repos/alice/r1/git/refs/heads/main","object":{"sha":"%s","type":"commit"}}
			]`, testSHA)
		})

		client := newTestClient(t, mux)
		refs, err := client.ListRefs(context.Background(), testRepo)
		gt.NoError(t, err)
		gt.V(t, len(refs)).Equal(2)
		gt.V(t, refs[0].Name).Equal("refs/heads/develop")
		gt.V(t, refs[1].URL).Equal("https://api.github.com/repos/alice/r1/git/refs/heads/main")
		gt.V(t, refs[1].SHA).Equal(types.CommitSHA(testSHA))
	})

	t.Run("empty repository has no refs", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/r1/git/matching-refs/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			fmt.Fprint(w, `{"message":"Git Repository is empty."}`)
		})

		client := newTestClient(t, mux)
		refs, err := client.ListRefs(context.Background(), testRepo)
		gt.NoError(t, err)
		gt.V(t, len(refs)).Equal(0)
	})

	t.Run("other errors propagate", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/r1/git/matching-refs/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"message":"Forbidden"}`)
		})

		client := newTestClient(t, mux)
		_, err := client.ListRefs(context.Background(), testRepo)
		gt.Error(t, err)
	})
}

func TestGetTree(t *testing.T) {
	var recursive string
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/alice/r1/git/trees/"+testSHA, func(w http.ResponseWriter, r *http.Request) {
		recursive = r.URL.Query().Get("recursive")
		fmt.Fprintf(w, `{"sha":"%s","truncated":true,"tree":[
			{"path":"src","type":"tree"},
			{"path":"src/main.py","type":"blob"},
			{"path":"README.md","type":"blob"},
			{"path":"src/main.py","type":"blob"}
		]}`, testSHA)
	})

	client := newTestClient(t, mux)
	tree, err := client.GetTree(context.Background(), testRepo, testSHA)
	gt.NoError(t, err)
	gt.V(t, recursive).Equal("1")
	gt.V(t, tree.Paths).Equal([]string{"src", "src/main.py", "README.md", "src/main.py"})
	gt.True(t, tree.Truncated)
	gt.V(t, tree.SHA).Equal(types.CommitSHA(testSHA))
}

func TestGetFileContent(t *testing.T) {
	t.Run("found file is decoded", func(t *testing.T) {
		var ref string
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/r1/contents/src/a.py", func(w http.ResponseWriter, r *http.Request) {
			ref = r.URL.Query().Get("ref")
			fmt.Fprint(w, `{"type":"file","encoding":"base64","name":"a.py","path":"src/a.py","content":"YQpiCg=="}`)
		})

		client := newTestClient(t, mux)
		content, err := client.GetFileContent(context.Background(), testRepo, "src/a.py", testSHA)
		gt.NoError(t, err)
		gt.True(t, content.Found())
		gt.V(t, string(content.Data)).Equal("a\nb\n")
		gt.V(t, ref).Equal(testSHA)
	})

	t.Run("404 is not found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/r1/contents/gone.py", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"message":"Not Found"}`)
		})

		client := newTestClient(t, mux)
		content, err := client.GetFileContent(context.Background(), testRepo, "gone.py", testSHA)
		gt.NoError(t, err)
		gt.False(t, content.Found())
		gt.V(t, content.Path).Equal("gone.py")
	})

	t.Run("submodule is not found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/r1/contents/vendor.py", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"type":"submodule","name":"vendor.py","path":"vendor.py","submodule_git_url":"git://example.com/vendor.git"}`)
		})

		client := newTestClient(t, mux)
		content, err := client.GetFileContent(context.Background(), testRepo, "vendor.py", testSHA)
		gt.NoError(t, err)
		gt.False(t, content.Found())
	})

	t.Run("directory is not found", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/r1/contents/pkg.py", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"type":"file","name":"x.py","path":"pkg.py/x.py"}]`)
		})

		client := newTestClient(t, mux)
		content, err := client.GetFileContent(context.Background(), testRepo, "pkg.py", testSHA)
		gt.NoError(t, err)
		gt.False(t, content.Found())
	})

	t.Run("large file is downloaded from raw endpoint", func(t *testing.T) {
		testCases := map[string]struct {
			path    string
			dirPath string
		}{
			"root level file": {path: "big.py", dirPath: "/repos/alice/r1/contents/"},
			"nested file":     {path: "src/big.py", dirPath: "/repos/alice/r1/contents/src"},
		}

		for name, tc := range testCases {
			t.Run(name, func(t *testing.T) {
				var requests []string
				var serverURL string
				mux := http.NewServeMux()
				mux.HandleFunc("/repos/alice/r1/contents/"+tc.path, func(w http.ResponseWriter, r *http.Request) {
					requests = append(requests, r.URL.Path)
					fmt.Fprintf(w, `{"type":"file","encoding":"none","name":"big.py","path":%q,"content":""}`, tc.path)
				})
				mux.HandleFunc(tc.dirPath, func(w http.ResponseWriter, r *http.Request) {
					requests = append(requests, r.URL.Path)
					gt.V(t, r.URL.Query().Get("ref")).Equal(testSHA)
					fmt.Fprintf(w, `[{"type":"file","name":"big.py","path":%q,"download_url":"%s/raw/%s"}]`, tc.path, serverURL, tc.path)
				})
				mux.HandleFunc("/raw/"+tc.path, func(w http.ResponseWriter, r *http.Request) {
					requests = append(requests, r.URL.Path)
					fmt.Fprint(w, "a\nb\nc")
				})

				server := httptest.NewServer(mux)
				t.Cleanup(server.Close)
				serverURL = server.URL

				client := gt.R1(githubapi.NewWithToken(context.Background(), "test-token", githubapi.WithBaseURL(server.URL))).NoError(t)
				content, err := client.GetFileContent(context.Background(), testRepo, tc.path, testSHA)
				gt.NoError(t, err)
				gt.True(t, content.Found())
				gt.V(t, string(content.Data)).Equal("a\nb\nc")
				gt.V(t, requests).Equal([]string{
					"/repos/alice/r1/contents/" + tc.path,
					tc.dirPath,
					"/raw/" + tc.path,
				})
			})
		}
	})

	t.Run("large file missing on raw endpoint is not found", func(t *testing.T) {
		var serverURL string
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/r1/contents/src/big.py", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"type":"file","encoding":"none","name":"big.py","path":"src/big.py","content":""}`)
		})
		mux.HandleFunc("/repos/alice/r1/contents/src", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `[{"type":"file","name":"big.py","path":"src/big.py","download_url":"%s/raw/src/big.py"}]`, serverURL)
		})
		mux.HandleFunc("/raw/src/big.py", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, "404: Not Found")
		})

		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		serverURL = server.URL

		client := gt.R1(githubapi.NewWithToken(context.Background(), "test-token", githubapi.WithBaseURL(server.URL))).NoError(t)
		content, err := client.GetFileContent(context.Background(), testRepo, "src/big.py", testSHA)
		gt.NoError(t, err)
		gt.False(t, content.Found())
		gt.V(t, content.Path).Equal("src/big.py")
	})

	t.Run("large file with raw endpoint error fails", func(t *testing.T) {
		var serverURL string
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/r1/contents/src/big.py", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"type":"file","encoding":"none","name":"big.py","path":"src/big.py","content":""}`)
		})
		mux.HandleFunc("/repos/alice/r1/contents/src", func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprintf(w, `[{"type":"file","name":"big.py","path":"src/big.py","download_url":"%s/raw/src/big.py"}]`, serverURL)
		})
		mux.HandleFunc("/raw/src/big.py", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		server := httptest.NewServer(mux)
		t.Cleanup(server.Close)
		serverURL = server.URL

		client := gt.R1(githubapi.NewWithToken(context.Background(), "test-token", githubapi.WithBaseURL(server.URL))).NoError(t)
		_, err := client.GetFileContent(context.Background(), testRepo, "src/big.py", testSHA)
		gt.Error(t, err)
	})

	t.Run("server error propagates", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/alice/r1/contents/a.py", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			fmt.Fprint(w, `{"message":"Bad Gateway"}`)
		})

		client := newTestClient(t, mux)
		_, err := client.GetFileContent(context.Background(), testRepo, "a.py", testSHA)
		gt.Error(t, err)
	})
}

func TestListRepositories_Integration(t *testing.T) {
	token := testutil.GetEnvOrSkip(t, "TEST_GITHUB_TOKEN")

	client, err := githubapi.NewWithToken(context.Background(), types.GitHubToken(token))
	gt.NoError(t, err)

	ctx := context.Background()
	repos, err := client.ListRepositories(ctx)
	gt.NoError(t, err)
	t.Logf("Found %d repositories", len(repos))

	for _, repo := range repos {
		gt.V(t, repo.Name).NotEqual("")
		gt.V(t, repo.URL).NotEqual("")
	}

	limit, err := client.GetRateLimit(ctx)
	gt.NoError(t, err)
	t.Logf("Rate limit: %d/%d", limit.Remaining, limit.Limit)
}
