package main

import (
	"os"
	"os/signal"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/valyala/fasthttp"

	"github.com/jimforte/Misago/config"
	"github.com/jimforte/Misago/consts"
	"github.com/jimforte/Misago/repositories"
	"github.com/jimforte/Misago/services"
	"github.com/jimforte/Misago/store"
)

func main() {
	config.Load()

	client := &fasthttp.Client{}

	postRepository := repositories.NewPostRepository(
		client, os.Getenv("FORUM_API_URL"), 0,
	)

	var initial store.State
	if threadID, err := strconv.ParseInt(os.Getenv("FORUM_THREAD_ID"), 10, 32); err == nil {
		posts, err := postRepository.FetchThreadPosts(int32(threadID))
		if err != nil {
			logrus.WithError(err).Warn("initial post load failed, starting empty")
		} else {
			initial.Posts = posts
		}
	}

	posts := store.New(initial, store.PostsReducer)
	statusRepository := repositories.NewStatusRepository(posts)

	checker := services.NewVersionChecker(
		consts.Version,
		services.NewIndexVersionSource(client, os.Getenv("VERSION_INDEX_URL"), config.CheckTimeout()),
	)

	srv := services.NewServer(
		services.ServerConfig{
			Host: os.Getenv("SERVER_HOST"),
			Port: os.Getenv("SERVER_PORT"),
		},
		services.ServerComponents{
			VersionChecker:   checker,
			StatusRepository: statusRepository,
		},
	)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, os.Interrupt)

	go func() {
		if err := srv.Run(); err != nil {
			logrus.WithError(err).Fatal("admin server failed")
		}
	}()

	<-ch

	if err := srv.Shutdown(); err != nil {
		logrus.WithError(err).Error("admin server shutdown failed")
	}
}
